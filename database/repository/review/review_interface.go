package reviewRepo

import "github.com/chrisdemonxxx/godrive/models"

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByBookingAndType(bookingID string, reviewType models.ReviewType) (*models.Review, error)
	ListForUser(revieweeID string) ([]models.Review, error)
	ListForCar(carID string) ([]models.Review, error)
	SetFlagged(id string, flagged bool, reason string) error
	AverageForReviewee(revieweeID string, reviewType models.ReviewType) (float64, int64, error)
	AverageForCar(carID string) (float64, int64, error)
}
