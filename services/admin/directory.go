package admin

import "github.com/chrisdemonxxx/godrive/models"

// ListUsers returns every platform user for the admin directory.
func (s *DefaultAdminService) ListUsers() ([]models.User, error) {
	return s.UserRepo.GetAll()
}

// ListBookings returns bookings platform-wide, optionally by status.
func (s *DefaultAdminService) ListBookings(status models.BookingStatus) ([]models.Booking, error) {
	return s.BookingRepo.ListByStatus(status)
}
