package booking

import (
	"fmt"
	"time"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Cancel aborts a pending or confirmed booking. Claimed dates are released
// and a verified deposit moves to refund_pending for manual settlement.
func (s *DefaultBookingService) Cancel(requesterID, bookingID, reason string, by models.CancellationBy) (*models.Booking, error) {
	b, err := s.mustGet(bookingID)
	if err != nil {
		return nil, err
	}

	switch by {
	case models.CancelledByGuest:
		if b.GuestID != requesterID {
			return nil, ErrNotParticipant
		}
	case models.CancelledByHost:
		if b.HostID != requesterID {
			return nil, ErrNotParticipant
		}
	case models.CancelledByAdmin, models.CancelledBySystem:
		// Authorization happens in the middleware or worker.
	default:
		return nil, fmt.Errorf("invalid cancellation source %q", by)
	}

	if b.Status != models.BookingPending && b.Status != models.BookingConfirmed {
		return nil, fmt.Errorf("%w: only pending or confirmed bookings can be cancelled", ErrWrongState)
	}

	now := time.Now()
	update := bson.M{
		"status":              models.BookingCancelled,
		"cancelled_at":        now,
		"cancelled_by":        by,
		"cancellation_reason": reason,
	}

	nextPayment := b.PaymentStatus
	if b.PaymentStatus == models.PaymentDepositPaid || b.PaymentStatus == models.PaymentFullyPaid {
		nextPayment = models.PaymentRefundPending
		update["payment_status"] = nextPayment
		update["refund_amount"] = b.TotalAmount
		b.RefundAmount = b.TotalAmount
	}

	if err := s.Repo.UpdateSetDocument(bookingID, update); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if _, err := s.AvailabilityRepo.DeleteBooked(bookingID); err != nil {
		utils.GetLogger().Error("Failed to release dates of cancelled booking",
			zap.String("bookingID", bookingID), zap.Error(err))
	}

	b.Status = models.BookingCancelled
	b.PaymentStatus = nextPayment
	b.CancelledAt = &now
	b.CancelledBy = by
	b.CancellationReason = reason

	s.notifyBoth(b, "Booking cancelled",
		fmt.Sprintf("Booking %s was cancelled (%s).", b.BookingNumber, by), "booking_cancelled")
	return b, nil
}

// StartTrip moves a confirmed booking to active at handover. The host
// records the odometer and fuel readings.
func (s *DefaultBookingService) StartTrip(hostID, bookingID string, odometerStart int64, fuelLevel string) (*models.Booking, error) {
	b, err := s.mustGet(bookingID)
	if err != nil {
		return nil, err
	}
	if b.HostID != hostID {
		return nil, ErrNotParticipant
	}
	if b.Status != models.BookingConfirmed {
		return nil, fmt.Errorf("%w: only confirmed bookings can start", ErrWrongState)
	}

	now := time.Now()
	if err := s.Repo.UpdateSetDocument(bookingID, bson.M{
		"status":                 models.BookingActive,
		"actual_pickup_datetime": now,
		"odometer_start":         odometerStart,
		"fuel_level_start":       fuelLevel,
	}); err != nil {
		return nil, fmt.Errorf("failed to start trip: %w", err)
	}
	b.Status = models.BookingActive
	b.ActualPickupDatetime = &now
	b.OdometerStart = odometerStart
	b.FuelLevelStart = fuelLevel

	s.notifyBoth(b, "Trip started",
		fmt.Sprintf("Booking %s is now on the road.", b.BookingNumber), "trip_started")
	return b, nil
}

// CompleteTrip closes an active booking at return and bumps the trip
// counters on the car and both users.
func (s *DefaultBookingService) CompleteTrip(hostID, bookingID string, odometerEnd int64, fuelLevel, hostNotes string) (*models.Booking, error) {
	b, err := s.mustGet(bookingID)
	if err != nil {
		return nil, err
	}
	if b.HostID != hostID {
		return nil, ErrNotParticipant
	}
	if b.Status != models.BookingActive {
		return nil, fmt.Errorf("%w: only active bookings can complete", ErrWrongState)
	}
	if odometerEnd > 0 && b.OdometerStart > 0 && odometerEnd < b.OdometerStart {
		return nil, fmt.Errorf("odometer cannot run backwards")
	}

	now := time.Now()
	if err := s.Repo.UpdateSetDocument(bookingID, bson.M{
		"status":                 models.BookingCompleted,
		"actual_return_datetime": now,
		"odometer_end":           odometerEnd,
		"fuel_level_end":         fuelLevel,
		"host_notes":             hostNotes,
	}); err != nil {
		return nil, fmt.Errorf("failed to complete trip: %w", err)
	}
	b.Status = models.BookingCompleted
	b.ActualReturnDatetime = &now
	b.OdometerEnd = odometerEnd
	b.FuelLevelEnd = fuelLevel
	b.HostNotes = hostNotes

	s.bumpCounters(b)
	s.notifyBoth(b, "Trip completed",
		fmt.Sprintf("Booking %s is complete. You can now leave a review.", b.BookingNumber), "trip_completed")
	return b, nil
}

// Expire abandons a pending booking whose payment window lapsed without a
// verified transfer. Bookings that progressed are left alone.
func (s *DefaultBookingService) Expire(bookingID string) error {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil || b.Status != models.BookingPending {
		return nil
	}
	// A submitted reference keeps the booking alive for manual review.
	if b.UPITransactionID != "" {
		return nil
	}

	_, err = s.Cancel(b.GuestID, bookingID, "payment window expired", models.CancelledBySystem)
	return err
}

func (s *DefaultBookingService) bumpCounters(b *models.Booking) {
	logger := utils.GetLogger()
	if err := s.CarRepo.Increment(b.CarID, bson.M{
		"total_trips":    1,
		"total_earnings": b.HostPayout,
	}); err != nil {
		logger.Error("Failed to bump car counters", zap.Error(err))
	}
	if err := s.UserRepo.Increment(b.GuestID, bson.M{"total_trips_as_guest": 1}); err != nil {
		logger.Error("Failed to bump guest counters", zap.Error(err))
	}
	if err := s.UserRepo.Increment(b.HostID, bson.M{"total_trips_as_host": 1}); err != nil {
		logger.Error("Failed to bump host counters", zap.Error(err))
	}
}

func (s *DefaultBookingService) notifyBoth(b *models.Booking, title, body, notifType string) {
	data := map[string]interface{}{"booking_id": b.ID}
	for _, userID := range []string{b.GuestID, b.HostID} {
		if err := s.Notifier.Notify(userID, title, body, notifType, data); err != nil {
			utils.GetLogger().Warn("Failed to send booking notification",
				zap.String("userID", userID), zap.Error(err))
		}
	}
}
