package booking

import (
	availabilityRepo "github.com/chrisdemonxxx/godrive/database/repository/availability"
	bookingRepo "github.com/chrisdemonxxx/godrive/database/repository/booking"
	carRepo "github.com/chrisdemonxxx/godrive/database/repository/car"
	userRepo "github.com/chrisdemonxxx/godrive/database/repository/user"
	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/services/notification"

	"github.com/hibiken/asynq"
)

// BookingService runs the rental flow end to end: quote, creation, the
// manual UPI payment leg, trip start/completion and cancellation.
type BookingService interface {
	Quote(carID string, req models.BookingRequest) (*models.BookingQuote, error)
	Create(guestID, idempotencyKey string, req models.BookingRequest) (*models.Booking, error)
	GetBooking(requesterID, bookingID string) (*models.Booking, error)
	ListForGuest(guestID string, status models.BookingStatus) ([]models.Booking, error)
	ListForHost(hostID string, status models.BookingStatus) ([]models.Booking, error)

	SubmitPayment(guestID, bookingID, upiTransactionID string) (*models.Booking, error)
	Cancel(requesterID, bookingID, reason string, by models.CancellationBy) (*models.Booking, error)
	StartTrip(hostID, bookingID string, odometerStart int64, fuelLevel string) (*models.Booking, error)
	CompleteTrip(hostID, bookingID string, odometerEnd int64, fuelLevel, hostNotes string) (*models.Booking, error)

	// Expire abandons a pending booking whose payment window lapsed. Invoked
	// by the queue worker.
	Expire(bookingID string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo             bookingRepo.BookingRepository
	CarRepo          carRepo.CarRepository
	UserRepo         userRepo.UserRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	Notifier         notification.NotificationService
	Queue            *asynq.Client
}
