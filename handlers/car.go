package handlers

import (
	"net/http"
	"strconv"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/services/car"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CarHandler exposes listing and search endpoints.
type CarHandler struct {
	Service car.CarService
}

// NewCarHandler wires the car endpoints to the service.
func NewCarHandler(svc car.CarService) *CarHandler {
	return &CarHandler{Service: svc}
}

// CreateCar creates a draft listing for the calling host.
func (h *CarHandler) CreateCar(c *gin.Context) {
	hostID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.CarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.CreateCar(hostID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCar replaces a listing's editable fields.
func (h *CarHandler) UpdateCar(c *gin.Context) {
	hostID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.CarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateCar(hostID, c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SubmitForApproval pushes a draft into the admin queue.
func (h *CarHandler) SubmitForApproval(c *gin.Context) {
	hostID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.Service.SubmitForApproval(hostID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive pauses or resumes an approved listing.
func (h *CarHandler) SetActive(c *gin.Context) {
	hostID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.SetActive(hostID, c.Param("id"), *req.Active)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AddImage attaches an uploaded photo to a listing.
func (h *CarHandler) AddImage(c *gin.Context) {
	hostID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	isPrimary := c.PostForm("is_primary") == "true"

	updated, err := h.Service.AddImage(hostID, c.Param("id"), fh, isPrimary)
	if err != nil {
		getLogger(c).Error("Failed to add car image", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RemoveImage detaches a photo from a listing.
func (h *CarHandler) RemoveImage(c *gin.Context) {
	hostID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.Service.RemoveImage(hostID, c.Param("id"), c.Param("imageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// MyCars lists the calling host's listings.
func (h *CarHandler) MyCars(c *gin.Context) {
	hostID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cars, err := h.Service.ListByHost(hostID)
	if err != nil {
		getLogger(c).Error("Failed to list host cars", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cars"})
		return
	}
	c.JSON(http.StatusOK, cars)
}

// GetCar returns one listing.
func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.Service.GetCar(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		return
	}
	c.JSON(http.StatusOK, car)
}

// parseIntQuery reads an integer query parameter, defaulting on absence.
func parseIntQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
