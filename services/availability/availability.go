package availability

import (
	"fmt"
	"time"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/utils"

	"github.com/google/uuid"
)

const maxCalendarDays = 366

// BlockDates marks every date in [from, to] unavailable for the host's own
// reasons. Dates already held by a booking cannot be blocked.
func (s *DefaultAvailabilityService) BlockDates(hostID, carID, from, to, reason string) (int, error) {
	dates, err := s.ownedRange(hostID, carID, from, to)
	if err != nil {
		return 0, err
	}
	if reason == "" {
		reason = models.AvailabilityBlockedByHost
	}
	if reason != models.AvailabilityBlockedByHost && reason != models.AvailabilityMaintenance {
		return 0, fmt.Errorf("invalid block reason %q", reason)
	}

	booked, err := s.Repo.ListUnavailable(carID, dates)
	if err != nil {
		return 0, err
	}
	for _, row := range booked {
		if row.Reason == models.AvailabilityBooked {
			return 0, fmt.Errorf("date %s is held by booking %s", row.Date, row.BookingID)
		}
	}

	rows := make([]models.CarAvailability, 0, len(dates))
	for _, date := range dates {
		rows = append(rows, models.CarAvailability{
			ID:          uuid.New().String(),
			CarID:       carID,
			Date:        date,
			IsAvailable: false,
			Reason:      reason,
		})
	}
	if err := s.Repo.Upsert(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// UnblockDates removes host blocks in [from, to]. Booking holds survive.
func (s *DefaultAvailabilityService) UnblockDates(hostID, carID, from, to string) (int64, error) {
	dates, err := s.ownedRange(hostID, carID, from, to)
	if err != nil {
		return 0, err
	}
	return s.Repo.DeleteHostBlocked(carID, dates)
}

// SetCustomRate overrides the daily rate for every date in [from, to]. The
// dates stay bookable.
func (s *DefaultAvailabilityService) SetCustomRate(hostID, carID, from, to string, dailyRate int64) (int, error) {
	if dailyRate <= 0 {
		return 0, fmt.Errorf("custom rate must be positive")
	}
	dates, err := s.ownedRange(hostID, carID, from, to)
	if err != nil {
		return 0, err
	}

	booked, err := s.Repo.ListUnavailable(carID, dates)
	if err != nil {
		return 0, err
	}
	if len(booked) > 0 {
		return 0, fmt.Errorf("date %s is not open for a rate override", booked[0].Date)
	}

	rows := make([]models.CarAvailability, 0, len(dates))
	for _, date := range dates {
		rows = append(rows, models.CarAvailability{
			ID:              uuid.New().String(),
			CarID:           carID,
			Date:            date,
			IsAvailable:     true,
			CustomDailyRate: dailyRate,
		})
	}
	if err := s.Repo.Upsert(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// GetCalendar returns the rows for [from, to]. Dates with no row are open
// at the standard rate.
func (s *DefaultAvailabilityService) GetCalendar(carID, from, to string) ([]models.CarAvailability, error) {
	if _, _, err := parseRange(from, to); err != nil {
		return nil, err
	}
	return s.Repo.ListForCar(carID, from, to)
}

func (s *DefaultAvailabilityService) ownedRange(hostID, carID, from, to string) ([]string, error) {
	car, err := s.CarRepo.GetByID(carID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch car: %w", err)
	}
	if car == nil {
		return nil, fmt.Errorf("car not found")
	}
	if car.HostID != hostID {
		return nil, fmt.Errorf("car does not belong to this host")
	}

	fromT, toT, err := parseRange(from, to)
	if err != nil {
		return nil, err
	}
	dates := utils.EnumerateDates(fromT, toT)
	if len(dates) == 0 {
		return nil, fmt.Errorf("empty date range")
	}
	if len(dates) > maxCalendarDays {
		return nil, fmt.Errorf("date range exceeds %d days", maxCalendarDays)
	}
	return dates, nil
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	fromT, err := utils.ParseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	toT, err := utils.ParseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if toT.Before(fromT) {
		return time.Time{}, time.Time{}, fmt.Errorf("to date is before from date")
	}
	return fromT, toT, nil
}
