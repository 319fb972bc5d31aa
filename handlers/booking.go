package handlers

import (
	"errors"
	"net/http"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the rental flow endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler wires the booking endpoints to the service.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// Quote prices a window without creating anything.
func (h *BookingHandler) Quote(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	quote, err := h.Service.Quote(req.CarID, req)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Create books a car. The optional Idempotency-Key header makes retries
// safe.
func (h *BookingHandler) Create(c *gin.Context) {
	guestID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Service.Create(guestID, c.GetHeader("Idempotency-Key"), req)
	if err != nil {
		getLogger(c).Warn("Booking creation failed", zap.Error(err))
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":  b,
		"upi_link": booking.PaymentLink(b),
	})
}

// Get returns one booking, visible to its participants and admins.
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	b, err := h.Service.GetBooking(userID, c.Param("id"))
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"booking": b}
	if b.Status == models.BookingPending && b.PaymentStatus == models.PaymentPending {
		resp["upi_link"] = booking.PaymentLink(b)
	}
	c.JSON(http.StatusOK, resp)
}

// MyBookings lists the caller's bookings as guest.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	list, err := h.Service.ListForGuest(userID, models.BookingStatus(c.Query("status")))
	if err != nil {
		getLogger(c).Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// HostBookings lists bookings on the caller's cars.
func (h *BookingHandler) HostBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	list, err := h.Service.ListForHost(userID, models.BookingStatus(c.Query("status")))
	if err != nil {
		getLogger(c).Error("Failed to list host bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, list)
}

type submitPaymentRequest struct {
	UPITransactionID string `json:"upi_transaction_id" binding:"required"`
}

// SubmitPayment records the guest's UPI transaction reference.
func (h *BookingHandler) SubmitPayment(c *gin.Context) {
	guestID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req submitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Service.SubmitPayment(guestID, c.Param("id"), req.UPITransactionID)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

// Cancel aborts a booking as guest.
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req cancelRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.Service.Cancel(userID, c.Param("id"), req.Reason, models.CancelledByGuest)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// HostCancel aborts a booking as host.
func (h *BookingHandler) HostCancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req cancelRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.Service.Cancel(userID, c.Param("id"), req.Reason, models.CancelledByHost)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

type startTripRequest struct {
	OdometerStart int64  `json:"odometer_start"`
	FuelLevel     string `json:"fuel_level"`
}

// StartTrip records the handover.
func (h *BookingHandler) StartTrip(c *gin.Context) {
	hostID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req startTripRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.Service.StartTrip(hostID, c.Param("id"), req.OdometerStart, req.FuelLevel)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

type completeTripRequest struct {
	OdometerEnd int64  `json:"odometer_end"`
	FuelLevel   string `json:"fuel_level"`
	HostNotes   string `json:"host_notes"`
}

// CompleteTrip records the return.
func (h *BookingHandler) CompleteTrip(c *gin.Context) {
	hostID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req completeTripRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.Service.CompleteTrip(hostID, c.Param("id"), req.OdometerEnd, req.FuelLevel, req.HostNotes)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// bookingErrorStatus maps service errors onto HTTP status codes.
func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrCarUnavailable):
		return http.StatusConflict
	case errors.Is(err, booking.ErrInvalidWindow),
		errors.Is(err, booking.ErrOwnCar),
		errors.Is(err, booking.ErrWrongState):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
