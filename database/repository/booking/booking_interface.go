package bookingRepo

import (
	"time"

	"github.com/chrisdemonxxx/godrive/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByNumber(number string) (*models.Booking, error)
	Update(booking *models.Booking) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	ListByGuest(guestID string, status models.BookingStatus) ([]models.Booking, error)
	ListByHost(hostID string, status models.BookingStatus) ([]models.Booking, error)
	ListByStatus(status models.BookingStatus) ([]models.Booking, error)
	ListPendingVerification() ([]models.Booking, error)
	FindOverlapping(carID string, pickup, ret time.Time) ([]models.Booking, error)
	ListConflictingCarIDs(pickup, ret time.Time) ([]string, error)
	ListCompletedForPayout(hostID string) ([]models.Booking, error)
	CountByStatus(status models.BookingStatus) (int64, error)
	SumByPaymentStatus(status models.PaymentStatus) (int64, error)
}
