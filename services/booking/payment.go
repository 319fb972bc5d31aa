package booking

import (
	"fmt"
	"time"

	"github.com/chrisdemonxxx/godrive/config"
	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// PaymentLink rebuilds the UPI deep link for an existing booking, carrying
// the booking number in the transaction note.
func PaymentLink(b *models.Booking) string {
	return utils.BuildUPILink(config.AppConfig.UPIAddress, config.AppConfig.UPIPayeeName,
		b.TotalAmount, "GoDrive-"+b.BookingNumber)
}

// SubmitPayment records the guest's UPI transaction reference. The booking
// stays pending until an admin verifies the transfer by hand.
func (s *DefaultBookingService) SubmitPayment(guestID, bookingID, upiTransactionID string) (*models.Booking, error) {
	if upiTransactionID == "" {
		return nil, fmt.Errorf("UPI transaction reference is required")
	}

	b, err := s.mustGet(bookingID)
	if err != nil {
		return nil, err
	}
	if b.GuestID != guestID {
		return nil, ErrNotParticipant
	}
	if b.Status != models.BookingPending || b.PaymentStatus != models.PaymentPending {
		return nil, fmt.Errorf("%w: payment can only be submitted while pending", ErrWrongState)
	}

	now := time.Now()
	if err := s.Repo.UpdateSetDocument(bookingID, bson.M{
		"upi_transaction_id":   upiTransactionID,
		"payment_submitted_at": now,
	}); err != nil {
		return nil, fmt.Errorf("failed to record payment submission: %w", err)
	}
	b.UPITransactionID = upiTransactionID
	b.PaymentSubmittedAt = &now

	if err := s.Notifier.NotifyAdmins("Payment awaiting verification",
		fmt.Sprintf("Booking %s reported UPI transaction %s.", b.BookingNumber, upiTransactionID),
		"payment_submitted", map[string]interface{}{"booking_id": b.ID}); err != nil {
		utils.GetLogger().Warn("Failed to notify admins of payment", zap.Error(err))
	}

	return b, nil
}
