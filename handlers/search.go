package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/chrisdemonxxx/godrive/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Search runs the marketplace search from query parameters.
func (h *CarHandler) Search(c *gin.Context) {
	params, err := searchParamsFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.Service.Search(params)
	if err != nil {
		getLogger(c).Error("Search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func searchParamsFromQuery(c *gin.Context) (models.CarSearchParams, error) {
	params := models.CarSearchParams{
		City:         c.Query("city"),
		Transmission: models.TransmissionType(c.Query("transmission")),
		FuelType:     models.FuelType(c.Query("fuel_type")),
		SortBy:       c.Query("sort_by"),
		MinSeats:     parseIntQuery(c, "min_seats", 0),
		MaxSeats:     parseIntQuery(c, "max_seats", 0),
		Page:         parseIntQuery(c, "page", 1),
		Limit:        parseIntQuery(c, "limit", 0),
	}

	params.Lat, _ = strconv.ParseFloat(c.Query("lat"), 64)
	params.Lng, _ = strconv.ParseFloat(c.Query("lng"), 64)
	params.RadiusMeters, _ = strconv.ParseFloat(c.Query("radius_meters"), 64)
	params.MinPrice, _ = strconv.ParseInt(c.Query("min_price"), 10, 64)
	params.MaxPrice, _ = strconv.ParseInt(c.Query("max_price"), 10, 64)

	if features := c.Query("features"); features != "" {
		params.Features = strings.Split(features, ",")
	}
	if raw := c.Query("instant_booking"); raw != "" {
		v := raw == "true"
		params.InstantBooking = &v
	}

	if pickup := c.Query("pickup"); pickup != "" {
		t, err := time.Parse(time.RFC3339, pickup)
		if err != nil {
			return params, err
		}
		params.PickupDate = &t
	}
	if ret := c.Query("return"); ret != "" {
		t, err := time.Parse(time.RFC3339, ret)
		if err != nil {
			return params, err
		}
		params.ReturnDate = &t
	}
	if (params.PickupDate == nil) != (params.ReturnDate == nil) {
		params.PickupDate = nil
		params.ReturnDate = nil
	}
	return params, nil
}
