package payout

import (
	"fmt"
	"time"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateBatch collects the host's completed, unsettled bookings into one
// pending payout and stamps them with the batch ID. Triggered by an admin
// and handed to the queue for processing.
func (s *DefaultPayoutService) CreateBatch(hostID string) (*models.HostPayout, error) {
	logger := utils.GetLogger()

	bookings, err := s.BookingRepo.ListCompletedForPayout(hostID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payable bookings: %w", err)
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("no unsettled bookings for this host")
	}

	var amount int64
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		amount += b.HostPayout
		ids = append(ids, b.ID)
	}

	p := &models.HostPayout{
		ID:         uuid.New().String(),
		HostID:     hostID,
		Amount:     amount,
		Currency:   "INR",
		BookingIDs: ids,
		Status:     models.PayoutPending,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create payout: %w", err)
	}

	for _, bookingID := range ids {
		if err := s.BookingRepo.UpdateSetDocument(bookingID, bson.M{"payout_id": p.ID}); err != nil {
			logger.Error("Failed to stamp booking with payout",
				zap.String("bookingID", bookingID), zap.Error(err))
		}
	}
	logger.Info("Payout batch created",
		zap.String("payoutID", p.ID),
		zap.String("hostID", hostID),
		zap.Int64("amount", amount),
		zap.Int("bookings", len(ids)))

	s.enqueueProcessing(p.ID)
	return p, nil
}

// Process moves a pending payout through processing to completed. The
// actual bank transfer happens off-platform; this records it.
func (s *DefaultPayoutService) Process(payoutID string) error {
	p, err := s.Repo.GetByID(payoutID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("payout not found")
	}
	if p.Status != models.PayoutPending && p.Status != models.PayoutProcessing {
		return nil
	}

	if p.Status == models.PayoutPending {
		if err := s.Repo.UpdateSetDocument(payoutID, bson.M{"status": models.PayoutProcessing}); err != nil {
			return err
		}
	}

	now := time.Now()
	if err := s.Repo.UpdateSetDocument(payoutID, bson.M{
		"status":       models.PayoutCompleted,
		"processed_at": now,
	}); err != nil {
		return err
	}

	if err := s.Notifier.Notify(p.HostID, "Payout on the way",
		fmt.Sprintf("A payout of ₹%d.%02d for %d trips was processed.",
			p.Amount/100, p.Amount%100, len(p.BookingIDs)),
		"payout_processed", map[string]interface{}{"payout_id": p.ID}); err != nil {
		utils.GetLogger().Warn("Failed to notify host of payout", zap.Error(err))
	}
	return nil
}

// MarkFailed parks a payout with a reason so ops can retry it.
func (s *DefaultPayoutService) MarkFailed(payoutID, reason string) error {
	return s.Repo.UpdateSetDocument(payoutID, bson.M{
		"status":         models.PayoutFailed,
		"failure_reason": reason,
	})
}

// ListForHost returns a host's payout history.
func (s *DefaultPayoutService) ListForHost(hostID string) ([]models.HostPayout, error) {
	return s.Repo.ListByHost(hostID)
}

// ListByStatus returns payouts in one state, for the ops dashboard.
func (s *DefaultPayoutService) ListByStatus(status models.PayoutStatus) ([]models.HostPayout, error) {
	return s.Repo.ListByStatus(status)
}
