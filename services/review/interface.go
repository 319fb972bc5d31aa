package review

import (
	bookingRepo "github.com/chrisdemonxxx/godrive/database/repository/booking"
	carRepo "github.com/chrisdemonxxx/godrive/database/repository/car"
	reviewRepo "github.com/chrisdemonxxx/godrive/database/repository/review"
	userRepo "github.com/chrisdemonxxx/godrive/database/repository/user"
	"github.com/chrisdemonxxx/godrive/models"
)

// ReviewService handles post-trip reviews and keeps the rating aggregates
// on users and cars in sync.
type ReviewService interface {
	Submit(reviewerID string, input models.ReviewInput) (*models.Review, error)
	ListForUser(userID string) ([]models.Review, error)
	ListForCar(carID string) ([]models.Review, error)
	Flag(reviewID, reason string) error
	Unflag(reviewID string) error
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo        reviewRepo.ReviewRepository
	BookingRepo bookingRepo.BookingRepository
	CarRepo     carRepo.CarRepository
	UserRepo    userRepo.UserRepository
}
