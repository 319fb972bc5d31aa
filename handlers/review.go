package handlers

import (
	"net/http"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/services/review"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review endpoints.
type ReviewHandler struct {
	Service review.ReviewService
}

// NewReviewHandler wires the review endpoints to the service.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// Submit creates a review for a completed trip.
func (h *ReviewHandler) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	r, err := h.Service.Submit(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// ForUser lists public reviews about a user.
func (h *ReviewHandler) ForUser(c *gin.Context) {
	list, err := h.Service.ListForUser(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ForCar lists public guest reviews for a car.
func (h *ReviewHandler) ForCar(c *gin.Context) {
	list, err := h.Service.ListForCar(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, list)
}

type flagReviewRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Flag hides a review pending moderation. Admin only.
func (h *ReviewHandler) Flag(c *gin.Context) {
	var req flagReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.Flag(c.Param("id"), req.Reason); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review flagged"})
}

// Unflag restores a flagged review. Admin only.
func (h *ReviewHandler) Unflag(c *gin.Context) {
	if err := h.Service.Unflag(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review restored"})
}
