package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/chrisdemonxxx/godrive/config"
	"github.com/chrisdemonxxx/godrive/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeBookingExpire is the queue task that abandons unpaid bookings.
const TypeBookingExpire = "booking:expire"

// ExpirePayload is the task payload for TypeBookingExpire.
type ExpirePayload struct {
	BookingID string `json:"booking_id"`
}

// NewExpireTask builds the delayed expiry task for a booking.
func NewExpireTask(bookingID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ExpirePayload{BookingID: bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal expire payload: %w", err)
	}
	return asynq.NewTask(TypeBookingExpire, payload), nil
}

// enqueueExpiry schedules the payment-window expiry for a fresh booking. A
// scheduling failure is logged, not fatal; an admin sweep can still catch
// stragglers.
func (s *DefaultBookingService) enqueueExpiry(bookingID string) {
	if s.Queue == nil {
		return
	}
	task, err := NewExpireTask(bookingID)
	if err != nil {
		utils.GetLogger().Error("Failed to build expiry task", zap.Error(err))
		return
	}

	delay := time.Duration(config.AppConfig.BookingPaymentTTLMin) * time.Minute
	if _, err := s.Queue.Enqueue(task, asynq.ProcessIn(delay), asynq.MaxRetry(3)); err != nil {
		utils.GetLogger().Error("Failed to enqueue booking expiry",
			zap.String("bookingID", bookingID), zap.Error(err))
	}
}

// HandleExpireTask is the asynq handler for TypeBookingExpire.
func (s *DefaultBookingService) HandleExpireTask(payload []byte) error {
	var p ExpirePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("failed to unmarshal expire payload: %w", err)
	}
	return s.Expire(p.BookingID)
}
