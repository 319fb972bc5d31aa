package car

import (
	"mime/multipart"

	availabilityRepo "github.com/chrisdemonxxx/godrive/database/repository/availability"
	bookingRepo "github.com/chrisdemonxxx/godrive/database/repository/booking"
	carRepo "github.com/chrisdemonxxx/godrive/database/repository/car"
	userRepo "github.com/chrisdemonxxx/godrive/database/repository/user"
	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/services/notification"
	"github.com/chrisdemonxxx/godrive/services/storage"
)

// CarService covers the listing lifecycle, photos, search and admin
// moderation.
type CarService interface {
	// Host operations
	CreateCar(hostID string, input models.CarInput) (*models.Car, error)
	UpdateCar(hostID, carID string, input models.CarInput) (*models.Car, error)
	SubmitForApproval(hostID, carID string) (*models.Car, error)
	SetActive(hostID, carID string, active bool) (*models.Car, error)
	AddImage(hostID, carID string, fh *multipart.FileHeader, isPrimary bool) (*models.Car, error)
	RemoveImage(hostID, carID, imageID string) (*models.Car, error)
	ListByHost(hostID string) ([]models.Car, error)

	// Public operations
	GetCar(carID string) (*models.Car, error)
	Search(params models.CarSearchParams) (*models.CarSearchPage, error)

	// Admin moderation
	Approve(adminID, carID string) (*models.Car, error)
	Reject(adminID, carID, reason string) (*models.Car, error)
	Suspend(adminID, carID, reason string) (*models.Car, error)
}

// DefaultCarService is the production implementation.
type DefaultCarService struct {
	Repo             carRepo.CarRepository
	UserRepo         userRepo.UserRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	BookingRepo      bookingRepo.BookingRepository
	Storage          storage.StorageService
	Notifier         notification.NotificationService
}
