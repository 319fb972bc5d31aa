package car

import (
	"fmt"
	"time"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Listing rule defaults applied when a host leaves them unset.
const (
	defaultMinBookingHours    = 4
	defaultMaxBookingDays     = 30
	defaultAdvanceNoticeHours = 2
)

// CreateCar creates a draft listing for a host. KYC-verified hosts only.
func (s *DefaultCarService) CreateCar(hostID string, input models.CarInput) (*models.Car, error) {
	host, err := s.UserRepo.GetByID(hostID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch host: %w", err)
	}
	if host == nil || !host.Role.CanHost() {
		return nil, fmt.Errorf("only hosts can list cars")
	}
	if host.KycStatus != models.KycVerified {
		return nil, fmt.Errorf("KYC verification is required before listing a car")
	}

	existing, err := s.Repo.GetByRegistration(input.RegistrationNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check registration: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("a car with registration %s already exists", input.RegistrationNumber)
	}

	car := carFromInput(input)
	car.ID = uuid.New().String()
	car.HostID = hostID
	car.Status = models.CarDraft
	applyListingDefaults(car)

	if err := s.Repo.Create(car); err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}
	utils.GetLogger().Info("Car listing created",
		zap.String("carID", car.ID), zap.String("hostID", hostID))
	return car, nil
}

// UpdateCar replaces the editable fields of a listing. Active listings drop
// back to pending approval after an edit.
func (s *DefaultCarService) UpdateCar(hostID, carID string, input models.CarInput) (*models.Car, error) {
	car, err := s.getOwned(hostID, carID)
	if err != nil {
		return nil, err
	}
	if car.Status == models.CarSuspended {
		return nil, fmt.Errorf("suspended listings cannot be edited")
	}
	if input.RegistrationNumber != car.RegistrationNumber {
		other, err := s.Repo.GetByRegistration(input.RegistrationNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to check registration: %w", err)
		}
		if other != nil && other.ID != car.ID {
			return nil, fmt.Errorf("a car with registration %s already exists", input.RegistrationNumber)
		}
	}

	updated := carFromInput(input)
	updated.ID = car.ID
	updated.HostID = car.HostID
	updated.Images = car.Images
	updated.TotalTrips = car.TotalTrips
	updated.TotalEarnings = car.TotalEarnings
	updated.AverageRating = car.AverageRating
	updated.TotalReviews = car.TotalReviews
	updated.CreatedAt = car.CreatedAt
	applyListingDefaults(updated)

	switch car.Status {
	case models.CarActive:
		updated.Status = models.CarPendingApproval
	default:
		updated.Status = car.Status
	}

	if err := s.Repo.Update(updated); err != nil {
		return nil, fmt.Errorf("failed to update car: %w", err)
	}
	return updated, nil
}

// SubmitForApproval moves a draft (or rejected edit) into the admin queue.
// At least one photo is required.
func (s *DefaultCarService) SubmitForApproval(hostID, carID string) (*models.Car, error) {
	car, err := s.getOwned(hostID, carID)
	if err != nil {
		return nil, err
	}
	if car.Status != models.CarDraft && car.Status != models.CarInactive {
		return nil, fmt.Errorf("car cannot be submitted from status %s", car.Status)
	}
	if len(car.Images) == 0 {
		return nil, fmt.Errorf("at least one photo is required")
	}

	if err := s.Repo.UpdateSetDocument(carID, bson.M{"status": models.CarPendingApproval}); err != nil {
		return nil, fmt.Errorf("failed to submit car: %w", err)
	}
	car.Status = models.CarPendingApproval

	if err := s.Notifier.NotifyAdmins("Listing awaiting approval",
		fmt.Sprintf("%s %s (%s) was submitted for review", car.Make, car.Model, car.RegistrationNumber),
		"car_approval", map[string]interface{}{"car_id": car.ID}); err != nil {
		utils.GetLogger().Warn("Failed to notify admins of submission", zap.Error(err))
	}
	return car, nil
}

// SetActive toggles an approved listing between active and inactive. Hosts
// use it to pause bookings without losing their approval.
func (s *DefaultCarService) SetActive(hostID, carID string, active bool) (*models.Car, error) {
	car, err := s.getOwned(hostID, carID)
	if err != nil {
		return nil, err
	}

	var next models.CarStatus
	if active {
		if car.Status != models.CarInactive || car.ApprovedAt == nil {
			return nil, fmt.Errorf("only approved, paused listings can be reactivated")
		}
		next = models.CarActive
	} else {
		if car.Status != models.CarActive {
			return nil, fmt.Errorf("only active listings can be paused")
		}
		next = models.CarInactive
	}

	if err := s.Repo.UpdateSetDocument(carID, bson.M{"status": next}); err != nil {
		return nil, fmt.Errorf("failed to change listing status: %w", err)
	}
	car.Status = next
	return car, nil
}

// ListByHost returns all of a host's listings.
func (s *DefaultCarService) ListByHost(hostID string) ([]models.Car, error) {
	return s.Repo.ListByHost(hostID)
}

// GetCar fetches one listing.
func (s *DefaultCarService) GetCar(carID string) (*models.Car, error) {
	car, err := s.Repo.GetByID(carID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch car: %w", err)
	}
	if car == nil {
		return nil, fmt.Errorf("car not found")
	}
	return car, nil
}

func (s *DefaultCarService) getOwned(hostID, carID string) (*models.Car, error) {
	car, err := s.GetCar(carID)
	if err != nil {
		return nil, err
	}
	if car.HostID != hostID {
		return nil, fmt.Errorf("car does not belong to this host")
	}
	return car, nil
}

func carFromInput(input models.CarInput) *models.Car {
	return &models.Car{
		Make:               input.Make,
		Model:              input.Model,
		Year:               input.Year,
		Variant:            input.Variant,
		Transmission:       input.Transmission,
		FuelType:           input.FuelType,
		Seats:              input.Seats,
		Color:              input.Color,
		RegistrationNumber: input.RegistrationNumber,
		LocationAddress:    input.LocationAddress,
		LocationArea:       input.LocationArea,
		LocationCity:       input.LocationCity,
		LocationLat:        input.LocationLat,
		LocationLng:        input.LocationLng,
		HourlyRate:         input.HourlyRate,
		DailyRate:          input.DailyRate,
		WeeklyRate:         input.WeeklyRate,
		MonthlyRate:        input.MonthlyRate,
		SecurityDeposit:    input.SecurityDeposit,
		UnlimitedKm:        input.UnlimitedKm,
		KmLimitPerDay:      input.KmLimitPerDay,
		ExtraKmCharge:      input.ExtraKmCharge,
		Features:           input.Features,
		Guidelines:         input.Guidelines,
		PickupInstructions: input.PickupInstructions,
		InstantBooking:     input.InstantBooking,
		MinBookingHours:    input.MinBookingHours,
		MaxBookingDays:     input.MaxBookingDays,
		AdvanceNoticeHours: input.AdvanceNoticeHours,
	}
}

func applyListingDefaults(car *models.Car) {
	if car.MinBookingHours <= 0 {
		car.MinBookingHours = defaultMinBookingHours
	}
	if car.MaxBookingDays <= 0 {
		car.MaxBookingDays = defaultMaxBookingDays
	}
	if car.AdvanceNoticeHours <= 0 {
		car.AdvanceNoticeHours = defaultAdvanceNoticeHours
	}
	if car.Features == nil {
		car.Features = []string{}
	}
}

// touchApproval stamps the moderation fields used by Approve.
func touchApproval(adminID string) (bson.M, *time.Time) {
	now := time.Now()
	return bson.M{
		"status":           models.CarActive,
		"approved_at":      now,
		"approved_by":      adminID,
		"rejection_reason": "",
	}, &now
}
