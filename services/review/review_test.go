package review

import (
	"testing"
	"time"

	"github.com/chrisdemonxxx/godrive/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeReviewRepo struct {
	reviews []*models.Review
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) GetByBookingAndType(bookingID string, reviewType models.ReviewType) (*models.Review, error) {
	for _, rv := range r.reviews {
		if rv.BookingID == bookingID && rv.Type == reviewType {
			return rv, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) ListForUser(string) ([]models.Review, error) { return nil, nil }
func (r *fakeReviewRepo) ListForCar(string) ([]models.Review, error)  { return nil, nil }
func (r *fakeReviewRepo) SetFlagged(string, bool, string) error       { return nil }

func (r *fakeReviewRepo) AverageForReviewee(revieweeID string, reviewType models.ReviewType) (float64, int64, error) {
	var sum float64
	var n int64
	for _, rv := range r.reviews {
		if rv.RevieweeID == revieweeID && rv.Type == reviewType {
			sum += float64(rv.Rating)
			n++
		}
	}
	if n == 0 {
		return 0, 0, nil
	}
	return sum / float64(n), n, nil
}

func (r *fakeReviewRepo) AverageForCar(carID string) (float64, int64, error) {
	var sum float64
	var n int64
	for _, rv := range r.reviews {
		if rv.CarID == carID && rv.Type == models.ReviewGuestToHost {
			sum += float64(rv.Rating)
			n++
		}
	}
	if n == 0 {
		return 0, 0, nil
	}
	return sum / float64(n), n, nil
}

type fakeBookingRepo struct {
	booking *models.Booking
}

func (r *fakeBookingRepo) Create(*models.Booking) error { return nil }
func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	if r.booking != nil && r.booking.ID == id {
		return r.booking, nil
	}
	return nil, nil
}
func (r *fakeBookingRepo) GetByNumber(string) (*models.Booking, error)   { return nil, nil }
func (r *fakeBookingRepo) Update(*models.Booking) error                  { return nil }
func (r *fakeBookingRepo) UpdateSetDocument(string, bson.M) error        { return nil }
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

type fakeUserRepo struct {
	updates map[string]bson.M
}

func (r *fakeUserRepo) Create(*models.User) error               { return nil }
func (r *fakeUserRepo) Update(*models.User) error               { return nil }
func (r *fakeUserRepo) UpdateSetDocument(id string, doc bson.M) error {
	if r.updates == nil {
		r.updates = map[string]bson.M{}
	}
	r.updates[id] = doc
	return nil
}
func (r *fakeUserRepo) Increment(string, bson.M) error                  { return nil }
func (r *fakeUserRepo) GetByID(string) (*models.User, error)            { return nil, nil }
func (r *fakeUserRepo) GetByIDWithProjection(string, bson.M) (*models.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) GetByPhone(string) (*models.User, error)             { return nil, nil }
func (r *fakeUserRepo) GetByEmail(string) (*models.User, error)             { return nil, nil }
func (r *fakeUserRepo) GetAll() ([]models.User, error)                      { return nil, nil }
func (r *fakeUserRepo) ListByRole(models.UserRole) ([]models.User, error)   { return nil, nil }
func (r *fakeUserRepo) Count() (int64, error)                               { return 0, nil }

type fakeCarRepo struct {
	updates map[string]bson.M
}

func (r *fakeCarRepo) Create(*models.Car) error { return nil }
func (r *fakeCarRepo) Update(*models.Car) error { return nil }
func (r *fakeCarRepo) UpdateSetDocument(id string, doc bson.M) error {
	if r.updates == nil {
		r.updates = map[string]bson.M{}
	}
	r.updates[id] = doc
	return nil
}
func (r *fakeCarRepo) Increment(string, bson.M) error                      { return nil }
func (r *fakeCarRepo) GetByID(string) (*models.Car, error)                 { return nil, nil }
func (r *fakeCarRepo) GetByRegistration(string) (*models.Car, error)       { return nil, nil }
func (r *fakeCarRepo) ListByHost(string) ([]models.Car, error)             { return nil, nil }
func (r *fakeCarRepo) ListByStatus(models.CarStatus) ([]models.Car, error) { return nil, nil }
func (r *fakeCarRepo) Search(models.CarSearchParams) ([]models.Car, error) { return nil, nil }
func (r *fakeCarRepo) CountByStatus(models.CarStatus) (int64, error)       { return 0, nil }
func (r *fakeCarRepo) Count() (int64, error)                               { return 0, nil }

func completedBooking() *models.Booking {
	return &models.Booking{
		ID:      "b1",
		CarID:   "c1",
		GuestID: "g1",
		HostID:  "h1",
		Status:  models.BookingCompleted,
	}
}

func newService(b *models.Booking) (*DefaultReviewService, *fakeReviewRepo, *fakeCarRepo, *fakeUserRepo) {
	reviews := &fakeReviewRepo{}
	cars := &fakeCarRepo{}
	users := &fakeUserRepo{}
	svc := &DefaultReviewService{
		Repo:        reviews,
		BookingRepo: &fakeBookingRepo{booking: b},
		CarRepo:     cars,
		UserRepo:    users,
	}
	return svc, reviews, cars, users
}

func TestSubmitGuestReviewTargetsHostAndCar(t *testing.T) {
	svc, _, cars, users := newService(completedBooking())

	rv, err := svc.Submit("g1", models.ReviewInput{BookingID: "b1", Rating: 5, Comment: "Smooth trip"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rv.Type != models.ReviewGuestToHost {
		t.Errorf("type = %s, want guest_to_host", rv.Type)
	}
	if rv.RevieweeID != "h1" {
		t.Errorf("reviewee = %s, want h1", rv.RevieweeID)
	}
	if rv.CarID != "c1" {
		t.Errorf("car = %s, want c1", rv.CarID)
	}
	if !rv.IsPublic {
		t.Error("fresh reviews should be public")
	}

	if doc := users.updates["h1"]; doc == nil || doc["average_rating_as_host"] != 5.0 {
		t.Errorf("host aggregate update = %v", doc)
	}
	if doc := cars.updates["c1"]; doc == nil || doc["average_rating"] != 5.0 || doc["total_reviews"] != int64(1) {
		t.Errorf("car aggregate update = %v", doc)
	}
}

func TestSubmitHostReviewTargetsGuestOnly(t *testing.T) {
	svc, _, cars, users := newService(completedBooking())

	rv, err := svc.Submit("h1", models.ReviewInput{BookingID: "b1", Rating: 4})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rv.Type != models.ReviewHostToGuest {
		t.Errorf("type = %s, want host_to_guest", rv.Type)
	}
	if rv.RevieweeID != "g1" {
		t.Errorf("reviewee = %s, want g1", rv.RevieweeID)
	}
	if rv.CarID != "" {
		t.Errorf("host reviews must not attach to the car, got %s", rv.CarID)
	}

	if doc := users.updates["g1"]; doc == nil || doc["average_rating_as_guest"] != 4.0 {
		t.Errorf("guest aggregate update = %v", doc)
	}
	if len(cars.updates) != 0 {
		t.Errorf("car aggregates must be untouched, got %v", cars.updates)
	}
}

func TestSubmitOncePerDirection(t *testing.T) {
	svc, _, _, _ := newService(completedBooking())

	if _, err := svc.Submit("g1", models.ReviewInput{BookingID: "b1", Rating: 5}); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if _, err := svc.Submit("g1", models.ReviewInput{BookingID: "b1", Rating: 1}); err == nil {
		t.Fatal("expected error for second guest review")
	}

	// Opposite direction is still open.
	if _, err := svc.Submit("h1", models.ReviewInput{BookingID: "b1", Rating: 4}); err != nil {
		t.Fatalf("host Submit: %v", err)
	}
}

func TestSubmitRejectsOutsiders(t *testing.T) {
	svc, _, _, _ := newService(completedBooking())
	if _, err := svc.Submit("stranger", models.ReviewInput{BookingID: "b1", Rating: 5}); err == nil {
		t.Fatal("expected error for non-participant")
	}
}

func TestSubmitRequiresCompletedTrip(t *testing.T) {
	b := completedBooking()
	b.Status = models.BookingActive
	svc, _, _, _ := newService(b)
	if _, err := svc.Submit("g1", models.ReviewInput{BookingID: "b1", Rating: 5}); err == nil {
		t.Fatal("expected error for an active trip")
	}
}
