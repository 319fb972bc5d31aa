package review

import (
	"fmt"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Submit creates one direction's review for a completed booking. Each side
// may review once; direction follows from who the reviewer was on the trip.
func (s *DefaultReviewService) Submit(reviewerID string, input models.ReviewInput) (*models.Review, error) {
	b, err := s.BookingRepo.GetByID(input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, fmt.Errorf("booking not found")
	}
	if b.Status != models.BookingCompleted {
		return nil, fmt.Errorf("only completed trips can be reviewed")
	}

	var reviewType models.ReviewType
	var revieweeID, carID string
	switch reviewerID {
	case b.GuestID:
		reviewType = models.ReviewGuestToHost
		revieweeID = b.HostID
		carID = b.CarID
	case b.HostID:
		reviewType = models.ReviewHostToGuest
		revieweeID = b.GuestID
	default:
		return nil, fmt.Errorf("only trip participants can review")
	}

	existing, err := s.Repo.GetByBookingAndType(input.BookingID, reviewType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("this trip was already reviewed")
	}

	review := &models.Review{
		ID:                  uuid.New().String(),
		BookingID:           input.BookingID,
		ReviewerID:          reviewerID,
		RevieweeID:          revieweeID,
		CarID:               carID,
		Type:                reviewType,
		Rating:              input.Rating,
		Comment:             input.Comment,
		CleanlinessRating:   input.CleanlinessRating,
		CommunicationRating: input.CommunicationRating,
		AccuracyRating:      input.AccuracyRating,
		ValueRating:         input.ValueRating,
		IsPublic:            true,
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, err
	}

	s.refreshAggregates(review)
	return review, nil
}

// refreshAggregates recomputes the stored averages touched by a new review.
func (s *DefaultReviewService) refreshAggregates(review *models.Review) {
	logger := utils.GetLogger()

	avg, _, err := s.Repo.AverageForReviewee(review.RevieweeID, review.Type)
	if err != nil {
		logger.Error("Failed to aggregate user rating", zap.Error(err))
	} else {
		field := "average_rating_as_guest"
		if review.Type == models.ReviewGuestToHost {
			field = "average_rating_as_host"
		}
		if err := s.UserRepo.UpdateSetDocument(review.RevieweeID, bson.M{field: avg}); err != nil {
			logger.Error("Failed to store user rating", zap.Error(err))
		}
	}

	if review.CarID != "" {
		avg, count, err := s.Repo.AverageForCar(review.CarID)
		if err != nil {
			logger.Error("Failed to aggregate car rating", zap.Error(err))
			return
		}
		if err := s.CarRepo.UpdateSetDocument(review.CarID, bson.M{
			"average_rating": avg,
			"total_reviews":  count,
		}); err != nil {
			logger.Error("Failed to store car rating", zap.Error(err))
		}
	}
}

// ListForUser returns public reviews about a user.
func (s *DefaultReviewService) ListForUser(userID string) ([]models.Review, error) {
	return s.Repo.ListForUser(userID)
}

// ListForCar returns public guest reviews for a car.
func (s *DefaultReviewService) ListForCar(carID string) ([]models.Review, error) {
	return s.Repo.ListForCar(carID)
}

// Flag hides a review pending moderation.
func (s *DefaultReviewService) Flag(reviewID, reason string) error {
	return s.Repo.SetFlagged(reviewID, true, reason)
}

// Unflag restores a flagged review to public view.
func (s *DefaultReviewService) Unflag(reviewID string) error {
	return s.Repo.SetFlagged(reviewID, false, "")
}
