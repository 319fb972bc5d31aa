package availability

import (
	availabilityRepo "github.com/chrisdemonxxx/godrive/database/repository/availability"
	carRepo "github.com/chrisdemonxxx/godrive/database/repository/car"
	"github.com/chrisdemonxxx/godrive/models"
)

// AvailabilityService manages a car's per-date calendar: host blocks,
// custom rates and the read view used by the listing page.
type AvailabilityService interface {
	BlockDates(hostID, carID string, from, to string, reason string) (int, error)
	UnblockDates(hostID, carID string, from, to string) (int64, error)
	SetCustomRate(hostID, carID string, from, to string, dailyRate int64) (int, error)
	GetCalendar(carID, from, to string) ([]models.CarAvailability, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo    availabilityRepo.AvailabilityRepository
	CarRepo carRepo.CarRepository
}
