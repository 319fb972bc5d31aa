package admin

import (
	"errors"
	"strings"
	"testing"
	"time"

	availabilityRepo "github.com/chrisdemonxxx/godrive/database/repository/availability"
	"github.com/chrisdemonxxx/godrive/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	bookings   map[string]*models.Booking
	updateDocs map[string]bson.M
	failUpdate bool
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{
		bookings:   map[string]*models.Booking{},
		updateDocs: map[string]bson.M{},
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
	if r.failUpdate {
		return errors.New("write failed")
	}
	if _, ok := r.bookings[id]; !ok {
		return errors.New("booking not found")
	}
	r.updateDocs[id] = doc
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
	claimed  map[string][]string // bookingID -> dates
	conflict bool
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{claimed: map[string][]string{}}
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
func (r *fakeAvailabilityRepo) InsertBooked(carID string, dates []string, bookingID string) error {
	if r.conflict {
		return availabilityRepo.ErrDateConflict
	}
	r.claimed[bookingID] = dates
	return nil
}
func (r *fakeAvailabilityRepo) DeleteBooked(bookingID string) (int64, error) {
	n := int64(len(r.claimed[bookingID]))
	delete(r.claimed, bookingID)
	return n, nil
}
func (r *fakeAvailabilityRepo) ListBlockedCarIDs([]string) ([]string, error) { return nil, nil }

type fakeNotifier struct {
	sent []string // "userID:title"
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

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:               "b1",
		BookingNumber:    "GD-20241224-4F7A2C",
		CarID:            "c1",
		GuestID:          "g1",
		HostID:           "h1",
		Status:           models.BookingPending,
		PaymentStatus:    models.PaymentPending,
		PickupDatetime:   time.Date(2024, 12, 24, 10, 0, 0, 0, time.UTC),
		ReturnDatetime:   time.Date(2024, 12, 26, 10, 0, 0, 0, time.UTC),
		UPITransactionID: "UPI123456",
	}
}

func TestVerifyPaymentApproveClaimsDates(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking())
	avail := newFakeAvailabilityRepo()
	notifier := &fakeNotifier{}
	svc := &DefaultAdminService{
		BookingRepo:      bookings,
		AvailabilityRepo: avail,
		Notifier:         notifier,
	}

	b, err := svc.VerifyPayment("admin1", "b1", true, "matched bank statement")
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if b.Status != models.BookingConfirmed {
		t.Errorf("status = %s, want confirmed", b.Status)
	}
	if b.PaymentStatus != models.PaymentDepositPaid {
		t.Errorf("payment status = %s, want deposit_paid", b.PaymentStatus)
	}

	dates := avail.claimed["b1"]
	if len(dates) != 3 {
		t.Fatalf("claimed %d dates, want 3 (inclusive of both ends): %v", len(dates), dates)
	}
	if dates[0] != "2024-12-24" || dates[2] != "2024-12-26" {
		t.Errorf("claimed dates = %v", dates)
	}

	if len(notifier.sent) != 2 {
		t.Fatalf("expected guest and host notifications, got %v", notifier.sent)
	}
}

func TestVerifyPaymentApproveDateConflict(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking())
	avail := newFakeAvailabilityRepo()
	avail.conflict = true
	svc := &DefaultAdminService{
		BookingRepo:      bookings,
		AvailabilityRepo: avail,
		Notifier:         &fakeNotifier{},
	}

	_, err := svc.VerifyPayment("admin1", "b1", true, "")
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if !strings.Contains(err.Error(), "refund required") {
		t.Errorf("error %q should mention the refund", err)
	}
	if doc := bookings.updateDocs["b1"]; doc != nil {
		t.Errorf("booking must stay pending on conflict, got update %v", doc)
	}
}

func TestVerifyPaymentApproveRollsBackClaimOnWriteFailure(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking())
	bookings.failUpdate = true
	avail := newFakeAvailabilityRepo()
	svc := &DefaultAdminService{
		BookingRepo:      bookings,
		AvailabilityRepo: avail,
		Notifier:         &fakeNotifier{},
	}

	if _, err := svc.VerifyPayment("admin1", "b1", true, ""); err == nil {
		t.Fatal("expected error when the confirm write fails")
	}
	if len(avail.claimed) != 0 {
		t.Errorf("claimed dates should be released after failed confirm, got %v", avail.claimed)
	}
}

func TestVerifyPaymentReject(t *testing.T) {
	bookings := newFakeBookingRepo(pendingBooking())
	avail := newFakeAvailabilityRepo()
	notifier := &fakeNotifier{}
	svc := &DefaultAdminService{
		BookingRepo:      bookings,
		AvailabilityRepo: avail,
		Notifier:         notifier,
	}

	b, err := svc.VerifyPayment("admin1", "b1", false, "reference not found")
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if b.Status != models.BookingCancelled {
		t.Errorf("status = %s, want cancelled", b.Status)
	}
	if b.PaymentStatus != models.PaymentFailed {
		t.Errorf("payment status = %s, want failed", b.PaymentStatus)
	}
	if len(avail.claimed) != 0 {
		t.Errorf("rejection must not claim dates, got %v", avail.claimed)
	}
}

func TestVerifyPaymentRequiresSubmittedReference(t *testing.T) {
	b := pendingBooking()
	b.UPITransactionID = ""
	svc := &DefaultAdminService{
		BookingRepo:      newFakeBookingRepo(b),
		AvailabilityRepo: newFakeAvailabilityRepo(),
		Notifier:         &fakeNotifier{},
	}

	if _, err := svc.VerifyPayment("admin1", "b1", true, ""); err == nil {
		t.Fatal("expected error when no UPI reference was submitted")
	}
}

func TestVerifyPaymentRejectsNonPendingBooking(t *testing.T) {
	b := pendingBooking()
	b.Status = models.BookingConfirmed
	svc := &DefaultAdminService{
		BookingRepo:      newFakeBookingRepo(b),
		AvailabilityRepo: newFakeAvailabilityRepo(),
		Notifier:         &fakeNotifier{},
	}

	if _, err := svc.VerifyPayment("admin1", "b1", true, ""); err == nil {
		t.Fatal("expected error for already-confirmed booking")
	}
}
