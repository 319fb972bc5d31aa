package admin

import (
	availabilityRepo "github.com/chrisdemonxxx/godrive/database/repository/availability"
	bookingRepo "github.com/chrisdemonxxx/godrive/database/repository/booking"
	carRepo "github.com/chrisdemonxxx/godrive/database/repository/car"
	documentRepo "github.com/chrisdemonxxx/godrive/database/repository/document"
	userRepo "github.com/chrisdemonxxx/godrive/database/repository/user"
	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/services/notification"
)

// AdminService covers manual payment verification, KYC review and the
// platform dashboard.
type AdminService interface {
	// Payment verification
	ListPendingPayments() ([]models.Booking, error)
	VerifyPayment(adminID, bookingID string, approve bool, notes string) (*models.Booking, error)

	// KYC review
	ListPendingDocuments() ([]models.UserDocument, error)
	ReviewDocument(adminID, documentID string, approve bool, reason string) (*models.UserDocument, error)

	// Dashboard
	ListUsers() ([]models.User, error)
	ListBookings(status models.BookingStatus) ([]models.Booking, error)
	Stats() (*models.PlatformStats, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	BookingRepo      bookingRepo.BookingRepository
	CarRepo          carRepo.CarRepository
	UserRepo         userRepo.UserRepository
	DocRepo          documentRepo.DocumentRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	Notifier         notification.NotificationService
}
