package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/chrisdemonxxx/godrive/config"
	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

// Quote computes the price breakdown and UPI deep link for a window without
// creating anything.
func (s *DefaultBookingService) Quote(carID string, req models.BookingRequest) (*models.BookingQuote, error) {
	car, err := s.bookableCar(carID)
	if err != nil {
		return nil, err
	}
	if err := s.checkWindow(car, req.PickupDatetime, req.ReturnDatetime); err != nil {
		return nil, err
	}

	breakdown := ComputePrice(car.DailyRate, car.SecurityDeposit, req.PickupDatetime, req.ReturnDatetime)
	link := utils.BuildUPILink(config.AppConfig.UPIAddress, config.AppConfig.UPIPayeeName,
		breakdown.TotalAmount, "GoDrive-quote")

	return &models.BookingQuote{
		CarID:     carID,
		Breakdown: breakdown,
		UPILink:   link,
	}, nil
}

// Create books the car for the guest. All amounts are recomputed here;
// nothing money-related is taken from the request. A repeated request with
// the same Idempotency-Key returns the original booking.
func (s *DefaultBookingService) Create(guestID, idempotencyKey string, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if idempotencyKey != "" {
		if existing, err := s.replayIdempotent(idempotencyKey); err == nil && existing != nil {
			logger.Info("Replaying idempotent booking",
				zap.String("key", idempotencyKey), zap.String("bookingID", existing.ID))
			return existing, nil
		}
	}

	car, err := s.bookableCar(req.CarID)
	if err != nil {
		return nil, err
	}
	if car.HostID == guestID {
		return nil, ErrOwnCar
	}
	if err := s.checkWindow(car, req.PickupDatetime, req.ReturnDatetime); err != nil {
		return nil, err
	}
	if err := s.checkAvailability(car.ID, req.PickupDatetime, req.ReturnDatetime); err != nil {
		return nil, err
	}

	guest, err := s.UserRepo.GetByID(guestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guest: %w", err)
	}
	if guest == nil || !guest.IsActive {
		return nil, fmt.Errorf("guest account is not active")
	}
	if guest.KycStatus != models.KycVerified {
		return nil, fmt.Errorf("KYC verification is required before booking")
	}

	now := time.Now()
	number, err := NewBookingNumber(now)
	if err != nil {
		return nil, err
	}
	breakdown := ComputePrice(car.DailyRate, car.SecurityDeposit, req.PickupDatetime, req.ReturnDatetime)

	b := &models.Booking{
		ID:              uuid.New().String(),
		BookingNumber:   number,
		CarID:           car.ID,
		GuestID:         guestID,
		HostID:          car.HostID,
		Status:          models.BookingPending,
		PaymentStatus:   models.PaymentPending,
		PickupDatetime:  req.PickupDatetime,
		ReturnDatetime:  req.ReturnDatetime,
		PickupLocation:  req.PickupLocation,
		DurationHours:   breakdown.Hours,
		BaseAmount:      breakdown.BaseAmount,
		ServiceFee:      breakdown.ServiceFee,
		SecurityDeposit: breakdown.SecurityDeposit,
		TotalAmount:     breakdown.TotalAmount,
		HostPayout:      breakdown.HostPayout,
		GuestNotes:      req.GuestNotes,
	}

	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	logger.Info("Booking created",
		zap.String("bookingID", b.ID),
		zap.String("bookingNumber", b.BookingNumber),
		zap.Int64("totalAmount", b.TotalAmount))

	if idempotencyKey != "" {
		s.rememberIdempotent(idempotencyKey, b.ID)
	}
	s.enqueueExpiry(b.ID)

	if err := s.Notifier.Notify(car.HostID, "New booking request",
		fmt.Sprintf("Booking %s for your %s %s is awaiting payment.", b.BookingNumber, car.Make, car.Model),
		"booking_created", map[string]interface{}{"booking_id": b.ID}); err != nil {
		logger.Warn("Failed to notify host of new booking", zap.Error(err))
	}

	return b, nil
}

// GetBooking fetches a booking visible to one of its participants or an
// admin.
func (s *DefaultBookingService) GetBooking(requesterID, bookingID string) (*models.Booking, error) {
	b, err := s.mustGet(bookingID)
	if err != nil {
		return nil, err
	}
	if b.GuestID != requesterID && b.HostID != requesterID {
		requester, err := s.UserRepo.GetByIDWithProjection(requesterID, bson.M{"role": 1})
		if err != nil {
			return nil, fmt.Errorf("failed to check requester: %w", err)
		}
		if requester == nil || requester.Role != models.RoleAdmin {
			return nil, ErrNotParticipant
		}
	}
	return b, nil
}

// ListForGuest returns the guest's bookings, optionally by status.
func (s *DefaultBookingService) ListForGuest(guestID string, status models.BookingStatus) ([]models.Booking, error) {
	return s.Repo.ListByGuest(guestID, status)
}

// ListForHost returns the host's bookings, optionally by status.
func (s *DefaultBookingService) ListForHost(hostID string, status models.BookingStatus) ([]models.Booking, error) {
	return s.Repo.ListByHost(hostID, status)
}

func (s *DefaultBookingService) mustGet(bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, fmt.Errorf("booking not found")
	}
	return b, nil
}

func (s *DefaultBookingService) bookableCar(carID string) (*models.Car, error) {
	car, err := s.CarRepo.GetByID(carID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch car: %w", err)
	}
	if car == nil {
		return nil, fmt.Errorf("car not found")
	}
	if car.Status != models.CarActive {
		return nil, fmt.Errorf("car is not open for booking")
	}
	return car, nil
}

// checkWindow enforces the listing's booking rules.
func (s *DefaultBookingService) checkWindow(car *models.Car, pickup, ret time.Time) error {
	if !ret.After(pickup) {
		return fmt.Errorf("%w: return must be after pickup", ErrInvalidWindow)
	}
	now := time.Now()
	if pickup.Before(now.Add(time.Duration(car.AdvanceNoticeHours) * time.Hour)) {
		return fmt.Errorf("%w: pickup needs at least %d hours notice", ErrInvalidWindow, car.AdvanceNoticeHours)
	}

	hours := ret.Sub(pickup).Hours()
	if hours < float64(car.MinBookingHours) {
		return fmt.Errorf("%w: minimum booking is %d hours", ErrInvalidWindow, car.MinBookingHours)
	}
	if hours > float64(car.MaxBookingDays)*24 {
		return fmt.Errorf("%w: maximum booking is %d days", ErrInvalidWindow, car.MaxBookingDays)
	}
	return nil
}

// checkAvailability rejects windows touching a blocked date or another
// blocking booking. A second guard runs at confirmation time; this check
// keeps obviously doomed bookings out of the admin queue.
func (s *DefaultBookingService) checkAvailability(carID string, pickup, ret time.Time) error {
	dates := utils.EnumerateDates(pickup, ret)
	blocked, err := s.AvailabilityRepo.ListUnavailable(carID, dates)
	if err != nil {
		return err
	}
	if len(blocked) > 0 {
		return ErrCarUnavailable
	}

	overlapping, err := s.Repo.FindOverlapping(carID, pickup, ret)
	if err != nil {
		return err
	}
	if len(overlapping) > 0 {
		return ErrCarUnavailable
	}
	return nil
}

func (s *DefaultBookingService) replayIdempotent(key string) (*models.Booking, error) {
	cacheKey := utils.IdempotencyPrefix + key
	bookingID, err := utils.GetCacheClient().Get(context.Background(), cacheKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return s.Repo.GetByID(bookingID)
}

func (s *DefaultBookingService) rememberIdempotent(key, bookingID string) {
	cacheKey := utils.IdempotencyPrefix + key
	if err := utils.GetCacheClient().Set(context.Background(), cacheKey, bookingID, idempotencyTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to record idempotency key", zap.Error(err))
	}
}
