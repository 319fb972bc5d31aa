package handlers

import (
	"net/http"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/services/admin"
	"github.com/chrisdemonxxx/godrive/services/car"
	"github.com/chrisdemonxxx/godrive/services/payout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes moderation, verification and dashboard endpoints.
type AdminHandler struct {
	Service   admin.AdminService
	CarSvc    car.CarService
	PayoutSvc payout.PayoutService
}

// NewAdminHandler wires the admin endpoints to their services.
func NewAdminHandler(svc admin.AdminService, carSvc car.CarService, payoutSvc payout.PayoutService) *AdminHandler {
	return &AdminHandler{Service: svc, CarSvc: carSvc, PayoutSvc: payoutSvc}
}

// PendingPayments lists bookings awaiting manual UPI verification.
func (h *AdminHandler) PendingPayments(c *gin.Context) {
	list, err := h.Service.ListPendingPayments()
	if err != nil {
		getLogger(c).Error("Failed to list pending payments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pending payments"})
		return
	}
	c.JSON(http.StatusOK, list)
}

type verifyPaymentRequest struct {
	Verified *bool  `json:"verified" binding:"required"`
	Notes    string `json:"notes"`
}

// VerifyPayment settles a manual UPI transfer.
func (h *AdminHandler) VerifyPayment(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Service.VerifyPayment(adminID, c.Param("id"), *req.Verified, req.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// PendingDocuments lists KYC documents awaiting review.
func (h *AdminHandler) PendingDocuments(c *gin.Context) {
	list, err := h.Service.ListPendingDocuments()
	if err != nil {
		getLogger(c).Error("Failed to list pending documents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pending documents"})
		return
	}
	c.JSON(http.StatusOK, list)
}

type reviewDocumentRequest struct {
	Approve *bool  `json:"approve" binding:"required"`
	Reason  string `json:"reason"`
}

// ReviewDocument records a manual KYC decision.
func (h *AdminHandler) ReviewDocument(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req reviewDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	doc, err := h.Service.ReviewDocument(adminID, c.Param("id"), *req.Approve, req.Reason)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ApproveCar activates a pending listing.
func (h *AdminHandler) ApproveCar(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.CarSvc.Approve(adminID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

type moderationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// RejectCar sends a pending listing back to draft.
func (h *AdminHandler) RejectCar(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req moderationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.CarSvc.Reject(adminID, c.Param("id"), req.Reason)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SuspendCar pulls a listing off the marketplace.
func (h *AdminHandler) SuspendCar(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req moderationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.CarSvc.Suspend(adminID, c.Param("id"), req.Reason)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

type createPayoutRequest struct {
	HostID string `json:"host_id" binding:"required"`
}

// CreatePayout batches a host's unsettled bookings.
func (h *AdminHandler) CreatePayout(c *gin.Context) {
	var req createPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.PayoutSvc.CreateBatch(req.HostID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Users returns the full user directory.
func (h *AdminHandler) Users(c *gin.Context) {
	list, err := h.Service.ListUsers()
	if err != nil {
		getLogger(c).Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Bookings lists bookings platform-wide. ?status= narrows by state.
func (h *AdminHandler) Bookings(c *gin.Context) {
	list, err := h.Service.ListBookings(models.BookingStatus(c.Query("status")))
	if err != nil {
		getLogger(c).Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Stats returns the dashboard summary.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats()
	if err != nil {
		getLogger(c).Error("Failed to assemble stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
