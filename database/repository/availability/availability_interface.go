package availabilityRepo

import "github.com/chrisdemonxxx/godrive/models"

// AvailabilityRepository defines persistence operations for per-date
// availability rows. Each row covers exactly one calendar date for one car;
// a unique (car_id, date) index keeps concurrent writers honest.
type AvailabilityRepository interface {
	Upsert(rows []models.CarAvailability) error
	DeleteHostBlocked(carID string, dates []string) (int64, error)
	ListForCar(carID, from, to string) ([]models.CarAvailability, error)
	ListUnavailable(carID string, dates []string) ([]models.CarAvailability, error)
	InsertBooked(carID string, dates []string, bookingID string) error
	DeleteBooked(bookingID string) (int64, error)
	ListBlockedCarIDs(dates []string) ([]string, error)
}
