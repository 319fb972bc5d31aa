package payoutRepo

import (
	"github.com/chrisdemonxxx/godrive/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PayoutRepository defines persistence operations for host payout batches.
type PayoutRepository interface {
	Create(payout *models.HostPayout) error
	GetByID(id string) (*models.HostPayout, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	ListByHost(hostID string) ([]models.HostPayout, error)
	ListByStatus(status models.PayoutStatus) ([]models.HostPayout, error)
}
