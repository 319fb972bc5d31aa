package admin

import (
	"fmt"

	"github.com/chrisdemonxxx/godrive/models"
)

// Stats assembles the dashboard summary.
func (s *DefaultAdminService) Stats() (*models.PlatformStats, error) {
	stats := &models.PlatformStats{}

	var err error
	if stats.TotalUsers, err = s.UserRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if stats.TotalCars, err = s.CarRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count cars: %w", err)
	}
	if stats.ActiveCars, err = s.CarRepo.CountByStatus(models.CarActive); err != nil {
		return nil, fmt.Errorf("failed to count active cars: %w", err)
	}
	if stats.PendingApprovals, err = s.CarRepo.CountByStatus(models.CarPendingApproval); err != nil {
		return nil, fmt.Errorf("failed to count pending approvals: %w", err)
	}
	if stats.ConfirmedBookings, err = s.BookingRepo.CountByStatus(models.BookingConfirmed); err != nil {
		return nil, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}

	pending, err := s.BookingRepo.ListPendingVerification()
	if err != nil {
		return nil, fmt.Errorf("failed to list pending payments: %w", err)
	}
	stats.PendingPayments = int64(len(pending))

	for _, status := range []models.BookingStatus{
		models.BookingPending, models.BookingConfirmed, models.BookingActive,
		models.BookingCompleted, models.BookingCancelled, models.BookingDisputed,
	} {
		n, err := s.BookingRepo.CountByStatus(status)
		if err != nil {
			return nil, fmt.Errorf("failed to count bookings: %w", err)
		}
		stats.TotalBookings += n
	}

	return stats, nil
}
