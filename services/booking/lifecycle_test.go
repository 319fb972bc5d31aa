package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/chrisdemonxxx/godrive/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	bookings   map[string]*models.Booking
	updateDocs map[string][]bson.M
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{
		bookings:   map[string]*models.Booking{},
		updateDocs: map[string][]bson.M{},
	}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) Create(b *models.Booking) error { r.bookings[b.ID] = b; return nil }
func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	return r.bookings[id], nil
}
func (r *fakeBookingRepo) GetByNumber(string) (*models.Booking, error) { return nil, nil }
func (r *fakeBookingRepo) Update(b *models.Booking) error              { r.bookings[b.ID] = b; return nil }
func (r *fakeBookingRepo) UpdateSetDocument(id string, doc bson.M) error {
	if _, ok := r.bookings[id]; !ok {
		return errors.New("booking not found")
	}
	r.updateDocs[id] = append(r.updateDocs[id], doc)
	return nil
}
func (r *fakeBookingRepo) ListByGuest(string, models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) ListByHost(string, models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) ListByStatus(models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) ListPendingVerification() ([]models.Booking, error) { return nil, nil }
func (r *fakeBookingRepo) FindOverlapping(string, time.Time, time.Time) ([]models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) ListConflictingCarIDs(time.Time, time.Time) ([]string, error) {
	return nil, nil
}
func (r *fakeBookingRepo) ListCompletedForPayout(string) ([]models.Booking, error) { return nil, nil }
func (r *fakeBookingRepo) CountByStatus(models.BookingStatus) (int64, error)       { return 0, nil }
func (r *fakeBookingRepo) SumByPaymentStatus(models.PaymentStatus) (int64, error)  { return 0, nil }

type fakeAvailabilityRepo struct {
	released []string
}

func (r *fakeAvailabilityRepo) Upsert([]models.CarAvailability) error { return nil }
func (r *fakeAvailabilityRepo) DeleteHostBlocked(string, []string) (int64, error) {
	return 0, nil
}
func (r *fakeAvailabilityRepo) ListForCar(string, string, string) ([]models.CarAvailability, error) {
	return nil, nil
}
func (r *fakeAvailabilityRepo) ListUnavailable(string, []string) ([]models.CarAvailability, error) {
	return nil, nil
}
func (r *fakeAvailabilityRepo) InsertBooked(string, []string, string) error { return nil }
func (r *fakeAvailabilityRepo) DeleteBooked(bookingID string) (int64, error) {
	r.released = append(r.released, bookingID)
	return 1, nil
}
func (r *fakeAvailabilityRepo) ListBlockedCarIDs([]string) ([]string, error) { return nil, nil }

type fakeCarRepo struct {
	increments map[string]bson.M
}

func (r *fakeCarRepo) Create(*models.Car) error               { return nil }
func (r *fakeCarRepo) Update(*models.Car) error               { return nil }
func (r *fakeCarRepo) UpdateSetDocument(string, bson.M) error { return nil }
func (r *fakeCarRepo) Increment(id string, fields bson.M) error {
	if r.increments == nil {
		r.increments = map[string]bson.M{}
	}
	r.increments[id] = fields
	return nil
}
func (r *fakeCarRepo) GetByID(string) (*models.Car, error)                 { return nil, nil }
func (r *fakeCarRepo) GetByRegistration(string) (*models.Car, error)       { return nil, nil }
func (r *fakeCarRepo) ListByHost(string) ([]models.Car, error)             { return nil, nil }
func (r *fakeCarRepo) ListByStatus(models.CarStatus) ([]models.Car, error) { return nil, nil }
func (r *fakeCarRepo) Search(models.CarSearchParams) ([]models.Car, error) { return nil, nil }
func (r *fakeCarRepo) CountByStatus(models.CarStatus) (int64, error)       { return 0, nil }
func (r *fakeCarRepo) Count() (int64, error)                               { return 0, nil }

type fakeUserRepo struct {
	increments map[string]bson.M
}

func (r *fakeUserRepo) Create(*models.User) error               { return nil }
func (r *fakeUserRepo) Update(*models.User) error               { return nil }
func (r *fakeUserRepo) UpdateSetDocument(string, bson.M) error  { return nil }
func (r *fakeUserRepo) Increment(id string, fields bson.M) error {
	if r.increments == nil {
		r.increments = map[string]bson.M{}
	}
	r.increments[id] = fields
	return nil
}
func (r *fakeUserRepo) GetByID(string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) GetByIDWithProjection(string, bson.M) (*models.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) GetByPhone(string) (*models.User, error)           { return nil, nil }
func (r *fakeUserRepo) GetByEmail(string) (*models.User, error)           { return nil, nil }
func (r *fakeUserRepo) GetAll() ([]models.User, error)                    { return nil, nil }
func (r *fakeUserRepo) ListByRole(models.UserRole) ([]models.User, error) { return nil, nil }
func (r *fakeUserRepo) Count() (int64, error)                             { return 0, nil }

type fakeNotifier struct {
	sent []string
}

func (n *fakeNotifier) Notify(userID, title, _, _ string, _ map[string]interface{}) error {
	n.sent = append(n.sent, userID+":"+title)
	return nil
}
func (n *fakeNotifier) NotifyAdmins(title, _, _ string, _ map[string]interface{}) error {
	n.sent = append(n.sent, "admins:"+title)
	return nil
}
func (n *fakeNotifier) List(string, bool) ([]models.Notification, error) { return nil, nil }
func (n *fakeNotifier) MarkRead(string, string) error                    { return nil }
func (n *fakeNotifier) MarkAllRead(string) (int64, error)                { return 0, nil }

func confirmedBooking() *models.Booking {
	return &models.Booking{
		ID:            "b1",
		BookingNumber: "GD-20250601-0000AA",
		CarID:         "c1",
		GuestID:       "g1",
		HostID:        "h1",
		Status:        models.BookingConfirmed,
		PaymentStatus: models.PaymentDepositPaid,
		TotalAmount:   660000,
		HostPayout:    240000,
	}
}

func newLifecycleService(repo *fakeBookingRepo, avail *fakeAvailabilityRepo) (*DefaultBookingService, *fakeCarRepo, *fakeUserRepo) {
	cars := &fakeCarRepo{}
	users := &fakeUserRepo{}
	svc := &DefaultBookingService{
		Repo:             repo,
		CarRepo:          cars,
		UserRepo:         users,
		AvailabilityRepo: avail,
		Notifier:         &fakeNotifier{},
	}
	return svc, cars, users
}

func TestCancelConfirmedBookingQueuesRefund(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	avail := &fakeAvailabilityRepo{}
	svc, _, _ := newLifecycleService(repo, avail)

	b, err := svc.Cancel("g1", "b1", "change of plans", models.CancelledByGuest)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if b.Status != models.BookingCancelled {
		t.Errorf("status = %s, want cancelled", b.Status)
	}
	if b.PaymentStatus != models.PaymentRefundPending {
		t.Errorf("payment status = %s, want refund_pending", b.PaymentStatus)
	}
	if b.RefundAmount != b.TotalAmount {
		t.Errorf("refund amount = %d, want full total %d", b.RefundAmount, b.TotalAmount)
	}

	docs := repo.updateDocs["b1"]
	if len(docs) != 1 {
		t.Fatalf("expected one update, got %d", len(docs))
	}
	if docs[0]["refund_amount"] != int64(660000) {
		t.Errorf("refund_amount in update = %v, want 660000", docs[0]["refund_amount"])
	}

	if len(avail.released) != 1 || avail.released[0] != "b1" {
		t.Errorf("claimed dates should be released, got %v", avail.released)
	}
}

func TestCancelUnpaidBookingSkipsRefund(t *testing.T) {
	b := confirmedBooking()
	b.Status = models.BookingPending
	b.PaymentStatus = models.PaymentPending
	repo := newFakeBookingRepo(b)
	svc, _, _ := newLifecycleService(repo, &fakeAvailabilityRepo{})

	out, err := svc.Cancel("g1", "b1", "", models.CancelledByGuest)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if out.PaymentStatus != models.PaymentPending {
		t.Errorf("payment status = %s, want pending untouched", out.PaymentStatus)
	}
	if _, ok := repo.updateDocs["b1"][0]["refund_amount"]; ok {
		t.Error("unpaid cancellation must not set a refund")
	}
}

func TestCancelRejectsWrongParty(t *testing.T) {
	svc, _, _ := newLifecycleService(newFakeBookingRepo(confirmedBooking()), &fakeAvailabilityRepo{})

	if _, err := svc.Cancel("h1", "b1", "", models.CancelledByGuest); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("host cancelling as guest: err = %v, want ErrNotParticipant", err)
	}
	if _, err := svc.Cancel("g1", "b1", "", models.CancelledByHost); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("guest cancelling as host: err = %v, want ErrNotParticipant", err)
	}
}

func TestCancelRejectsFinishedBooking(t *testing.T) {
	b := confirmedBooking()
	b.Status = models.BookingCompleted
	svc, _, _ := newLifecycleService(newFakeBookingRepo(b), &fakeAvailabilityRepo{})

	if _, err := svc.Cancel("g1", "b1", "", models.CancelledByGuest); !errors.Is(err, ErrWrongState) {
		t.Errorf("err = %v, want ErrWrongState", err)
	}
}

func TestStartTripRecordsHandover(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	svc, _, _ := newLifecycleService(repo, &fakeAvailabilityRepo{})

	b, err := svc.StartTrip("h1", "b1", 42000, "full")
	if err != nil {
		t.Fatalf("StartTrip: %v", err)
	}
	if b.Status != models.BookingActive {
		t.Errorf("status = %s, want active", b.Status)
	}
	if b.OdometerStart != 42000 || b.FuelLevelStart != "full" {
		t.Errorf("handover readings not recorded: %+v", b)
	}
	if b.ActualPickupDatetime == nil {
		t.Error("actual pickup time should be stamped")
	}
}

func TestStartTripRequiresConfirmed(t *testing.T) {
	b := confirmedBooking()
	b.Status = models.BookingPending
	svc, _, _ := newLifecycleService(newFakeBookingRepo(b), &fakeAvailabilityRepo{})

	if _, err := svc.StartTrip("h1", "b1", 0, ""); !errors.Is(err, ErrWrongState) {
		t.Errorf("err = %v, want ErrWrongState", err)
	}
}

func TestCompleteTripBumpsCounters(t *testing.T) {
	b := confirmedBooking()
	b.Status = models.BookingActive
	b.OdometerStart = 42000
	repo := newFakeBookingRepo(b)
	svc, cars, users := newLifecycleService(repo, &fakeAvailabilityRepo{})

	out, err := svc.CompleteTrip("h1", "b1", 42350, "half", "returned clean")
	if err != nil {
		t.Fatalf("CompleteTrip: %v", err)
	}
	if out.Status != models.BookingCompleted {
		t.Errorf("status = %s, want completed", out.Status)
	}

	if fields := cars.increments["c1"]; fields == nil || fields["total_earnings"] != int64(240000) {
		t.Errorf("car counters = %v", fields)
	}
	if fields := users.increments["g1"]; fields == nil || fields["total_trips_as_guest"] != 1 {
		t.Errorf("guest counters = %v", fields)
	}
	if fields := users.increments["h1"]; fields == nil || fields["total_trips_as_host"] != 1 {
		t.Errorf("host counters = %v", fields)
	}
}

func TestCompleteTripRejectsBackwardsOdometer(t *testing.T) {
	b := confirmedBooking()
	b.Status = models.BookingActive
	b.OdometerStart = 42000
	svc, _, _ := newLifecycleService(newFakeBookingRepo(b), &fakeAvailabilityRepo{})

	if _, err := svc.CompleteTrip("h1", "b1", 41000, "", ""); err == nil {
		t.Fatal("expected error for backwards odometer")
	}
}

func TestExpireCancelsOnlyUnpaidPending(t *testing.T) {
	b := confirmedBooking()
	b.Status = models.BookingPending
	b.PaymentStatus = models.PaymentPending
	repo := newFakeBookingRepo(b)
	svc, _, _ := newLifecycleService(repo, &fakeAvailabilityRepo{})

	if err := svc.Expire("b1"); err != nil {
		t.Fatalf("Expire: %v", err)
	}
	if len(repo.updateDocs["b1"]) != 1 {
		t.Fatal("expected the booking to be cancelled")
	}
	if got := repo.updateDocs["b1"][0]["cancelled_by"]; got != models.CancelledBySystem {
		t.Errorf("cancelled_by = %v, want system", got)
	}
}

func TestExpireLeavesSubmittedPaymentAlone(t *testing.T) {
	b := confirmedBooking()
	b.Status = models.BookingPending
	b.UPITransactionID = "UPI999"
	repo := newFakeBookingRepo(b)
	svc, _, _ := newLifecycleService(repo, &fakeAvailabilityRepo{})

	if err := svc.Expire("b1"); err != nil {
		t.Fatalf("Expire: %v", err)
	}
	if len(repo.updateDocs["b1"]) != 0 {
		t.Error("a booking with a submitted reference must not be expired")
	}
}

func TestExpireIgnoresMissingBooking(t *testing.T) {
	svc, _, _ := newLifecycleService(newFakeBookingRepo(), &fakeAvailabilityRepo{})
	if err := svc.Expire("ghost"); err != nil {
		t.Fatalf("Expire on missing booking should be a no-op, got %v", err)
	}
}
