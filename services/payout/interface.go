package payout

import (
	bookingRepo "github.com/chrisdemonxxx/godrive/database/repository/booking"
	payoutRepo "github.com/chrisdemonxxx/godrive/database/repository/payout"
	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/services/notification"

	"github.com/hibiken/asynq"
)

// PayoutService batches a host's completed, unsettled bookings into payout
// records that ops pays out over UPI, then marks them processed.
type PayoutService interface {
	CreateBatch(hostID string) (*models.HostPayout, error)
	Process(payoutID string) error
	MarkFailed(payoutID, reason string) error
	ListForHost(hostID string) ([]models.HostPayout, error)
	ListByStatus(status models.PayoutStatus) ([]models.HostPayout, error)
}

// DefaultPayoutService is the production implementation.
type DefaultPayoutService struct {
	Repo        payoutRepo.PayoutRepository
	BookingRepo bookingRepo.BookingRepository
	Notifier    notification.NotificationService
	Queue       *asynq.Client
}
