package carRepo

import (
	"github.com/chrisdemonxxx/godrive/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CarRepository defines persistence operations for car listings.
type CarRepository interface {
	Create(car *models.Car) error
	Update(car *models.Car) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Increment(id string, fields bson.M) error
	GetByID(id string) (*models.Car, error)
	GetByRegistration(registration string) (*models.Car, error)
	ListByHost(hostID string) ([]models.Car, error)
	ListByStatus(status models.CarStatus) ([]models.Car, error)
	Search(params models.CarSearchParams) ([]models.Car, error)
	CountByStatus(status models.CarStatus) (int64, error)
	Count() (int64, error)
}
