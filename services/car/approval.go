package car

import (
	"fmt"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Approve activates a listing from the admin queue.
func (s *DefaultCarService) Approve(adminID, carID string) (*models.Car, error) {
	car, err := s.GetCar(carID)
	if err != nil {
		return nil, err
	}
	if car.Status != models.CarPendingApproval {
		return nil, fmt.Errorf("car is not awaiting approval")
	}

	update, approvedAt := touchApproval(adminID)
	if err := s.Repo.UpdateSetDocument(carID, update); err != nil {
		return nil, fmt.Errorf("failed to approve car: %w", err)
	}
	car.Status = models.CarActive
	car.ApprovedAt = approvedAt
	car.ApprovedBy = adminID
	car.RejectionReason = ""

	s.notifyHost(car, "Listing approved",
		fmt.Sprintf("Your %s %s is now live and bookable.", car.Make, car.Model))
	return car, nil
}

// Reject sends a listing back to draft with a reason for the host.
func (s *DefaultCarService) Reject(adminID, carID, reason string) (*models.Car, error) {
	car, err := s.GetCar(carID)
	if err != nil {
		return nil, err
	}
	if car.Status != models.CarPendingApproval {
		return nil, fmt.Errorf("car is not awaiting approval")
	}

	update := bson.M{
		"status":           models.CarDraft,
		"rejection_reason": reason,
	}
	if err := s.Repo.UpdateSetDocument(carID, update); err != nil {
		return nil, fmt.Errorf("failed to reject car: %w", err)
	}
	car.Status = models.CarDraft
	car.RejectionReason = reason

	s.notifyHost(car, "Listing rejected",
		fmt.Sprintf("Your %s %s was not approved: %s", car.Make, car.Model, reason))
	return car, nil
}

// Suspend pulls a live listing off the marketplace. Existing bookings are
// untouched; suspension only blocks new ones.
func (s *DefaultCarService) Suspend(adminID, carID, reason string) (*models.Car, error) {
	car, err := s.GetCar(carID)
	if err != nil {
		return nil, err
	}
	if car.Status != models.CarActive && car.Status != models.CarInactive {
		return nil, fmt.Errorf("only approved listings can be suspended")
	}

	update := bson.M{
		"status":           models.CarSuspended,
		"rejection_reason": reason,
	}
	if err := s.Repo.UpdateSetDocument(carID, update); err != nil {
		return nil, fmt.Errorf("failed to suspend car: %w", err)
	}
	car.Status = models.CarSuspended
	car.RejectionReason = reason

	s.notifyHost(car, "Listing suspended",
		fmt.Sprintf("Your %s %s was suspended: %s", car.Make, car.Model, reason))
	return car, nil
}

func (s *DefaultCarService) notifyHost(car *models.Car, title, body string) {
	if err := s.Notifier.Notify(car.HostID, title, body, "car_moderation",
		map[string]interface{}{"car_id": car.ID}); err != nil {
		utils.GetLogger().Warn("Failed to notify host", zap.Error(err))
	}
}
