package handlers

import (
	"net/http"

	"github.com/chrisdemonxxx/godrive/services/availability"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the calendar endpoints.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler wires the calendar endpoints to the service.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

type dateRangeRequest struct {
	From   string `json:"from" binding:"required"`
	To     string `json:"to" binding:"required"`
	Reason string `json:"reason"`
}

type customRateRequest struct {
	From      string `json:"from" binding:"required"`
	To        string `json:"to" binding:"required"`
	DailyRate int64  `json:"daily_rate" binding:"required"`
}

// BlockDates marks a range unavailable for the host's own reasons.
func (h *AvailabilityHandler) BlockDates(c *gin.Context) {
	hostID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	n, err := h.Service.BlockDates(hostID, c.Param("id"), req.From, req.To, req.Reason)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocked_dates": n})
}

// UnblockDates removes host blocks in a range.
func (h *AvailabilityHandler) UnblockDates(c *gin.Context) {
	hostID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	n, err := h.Service.UnblockDates(hostID, c.Param("id"), req.From, req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unblocked_dates": n})
}

// SetCustomRate overrides the daily rate on a range.
func (h *AvailabilityHandler) SetCustomRate(c *gin.Context) {
	hostID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req customRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	n, err := h.Service.SetCustomRate(hostID, c.Param("id"), req.From, req.To, req.DailyRate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated_dates": n})
}

// GetCalendar returns the availability rows for a range. Public: the
// listing page renders the calendar from it.
func (h *AvailabilityHandler) GetCalendar(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}

	rows, err := h.Service.GetCalendar(c.Param("id"), from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
