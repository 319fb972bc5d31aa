package admin

import (
	"errors"
	"fmt"

	availabilityRepo "github.com/chrisdemonxxx/godrive/database/repository/availability"
	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ListPendingPayments returns bookings whose guests reported a UPI transfer
// that still needs a human check against the bank statement.
func (s *DefaultAdminService) ListPendingPayments() ([]models.Booking, error) {
	return s.BookingRepo.ListPendingVerification()
}

// VerifyPayment settles a manual UPI transfer. Approval confirms the
// booking and claims its dates; the per-date unique index catches the race
// where two pending bookings on the same car both got paid. Rejection
// cancels the booking and marks the payment failed.
func (s *DefaultAdminService) VerifyPayment(adminID, bookingID string, approve bool, notes string) (*models.Booking, error) {
	logger := utils.GetLogger()

	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, fmt.Errorf("booking not found")
	}
	if b.Status != models.BookingPending {
		return nil, fmt.Errorf("booking is not awaiting verification")
	}
	if b.UPITransactionID == "" {
		return nil, fmt.Errorf("no UPI transaction reference was submitted")
	}

	if !approve {
		update := bson.M{
			"status":         models.BookingCancelled,
			"payment_status": models.PaymentFailed,
			"admin_notes":    notes,
		}
		if err := s.BookingRepo.UpdateSetDocument(bookingID, update); err != nil {
			return nil, fmt.Errorf("failed to reject payment: %w", err)
		}
		b.Status = models.BookingCancelled
		b.PaymentStatus = models.PaymentFailed
		b.AdminNotes = notes

		logger.Info("Payment rejected",
			zap.String("bookingID", bookingID), zap.String("adminID", adminID))
		s.notifyGuest(b, "Payment rejected",
			fmt.Sprintf("We could not verify the transfer for booking %s. %s", b.BookingNumber, notes))
		return b, nil
	}

	// Claim the dates first. If another booking confirmed in the meantime
	// the claim fails and the booking stays pending for the admin to refund.
	dates := utils.EnumerateDates(b.PickupDatetime, b.ReturnDatetime)
	if err := s.AvailabilityRepo.InsertBooked(b.CarID, dates, b.ID); err != nil {
		if errors.Is(err, availabilityRepo.ErrDateConflict) {
			return nil, fmt.Errorf("dates were taken by another booking; refund required")
		}
		return nil, fmt.Errorf("failed to claim booking dates: %w", err)
	}

	update := bson.M{
		"status":         models.BookingConfirmed,
		"payment_status": models.PaymentDepositPaid,
		"admin_notes":    notes,
	}
	if err := s.BookingRepo.UpdateSetDocument(bookingID, update); err != nil {
		if _, delErr := s.AvailabilityRepo.DeleteBooked(b.ID); delErr != nil {
			logger.Error("Failed to release dates after confirm failure",
				zap.String("bookingID", b.ID), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}
	b.Status = models.BookingConfirmed
	b.PaymentStatus = models.PaymentDepositPaid
	b.AdminNotes = notes

	logger.Info("Payment verified",
		zap.String("bookingID", bookingID),
		zap.String("adminID", adminID),
		zap.String("upiTransactionID", b.UPITransactionID))

	s.notifyGuest(b, "Booking confirmed",
		fmt.Sprintf("Payment verified. Booking %s is confirmed.", b.BookingNumber))
	if err := s.Notifier.Notify(b.HostID, "Booking confirmed",
		fmt.Sprintf("Booking %s is paid and confirmed.", b.BookingNumber),
		"booking_confirmed", map[string]interface{}{"booking_id": b.ID}); err != nil {
		logger.Warn("Failed to notify host", zap.Error(err))
	}
	return b, nil
}

func (s *DefaultAdminService) notifyGuest(b *models.Booking, title, body string) {
	if err := s.Notifier.Notify(b.GuestID, title, body, "payment_verification",
		map[string]interface{}{"booking_id": b.ID}); err != nil {
		utils.GetLogger().Warn("Failed to notify guest", zap.Error(err))
	}
}
