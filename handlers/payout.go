package handlers

import (
	"net/http"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/services/payout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PayoutHandler exposes the host-facing payout endpoints.
type PayoutHandler struct {
	Service payout.PayoutService
}

// NewPayoutHandler wires the payout endpoints to the service.
func NewPayoutHandler(svc payout.PayoutService) *PayoutHandler {
	return &PayoutHandler{Service: svc}
}

// MyPayouts lists the calling host's payout history.
func (h *PayoutHandler) MyPayouts(c *gin.Context) {
	hostID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	list, err := h.Service.ListForHost(hostID)
	if err != nil {
		getLogger(c).Error("Failed to list payouts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payouts"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ByStatus lists payouts in one state. Admin only.
func (h *PayoutHandler) ByStatus(c *gin.Context) {
	status := models.PayoutStatus(c.Query("status"))
	if status == "" {
		status = models.PayoutPending
	}

	list, err := h.Service.ListByStatus(status)
	if err != nil {
		getLogger(c).Error("Failed to list payouts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payouts"})
		return
	}
	c.JSON(http.StatusOK, list)
}
