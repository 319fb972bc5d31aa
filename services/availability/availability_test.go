package availability

import (
	"strings"
	"testing"
	"time"

	"github.com/chrisdemonxxx/godrive/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeCarRepo struct {
	cars map[string]*models.Car
}

func (r *fakeCarRepo) Create(*models.Car) error                  { return nil }
func (r *fakeCarRepo) Update(*models.Car) error                  { return nil }
func (r *fakeCarRepo) UpdateSetDocument(string, bson.M) error    { return nil }
func (r *fakeCarRepo) Increment(string, bson.M) error            { return nil }
func (r *fakeCarRepo) GetByID(id string) (*models.Car, error)    { return r.cars[id], nil }
func (r *fakeCarRepo) GetByRegistration(string) (*models.Car, error) {
	return nil, nil
}
func (r *fakeCarRepo) ListByHost(string) ([]models.Car, error)              { return nil, nil }
func (r *fakeCarRepo) ListByStatus(models.CarStatus) ([]models.Car, error)  { return nil, nil }
func (r *fakeCarRepo) Search(models.CarSearchParams) ([]models.Car, error)  { return nil, nil }
func (r *fakeCarRepo) CountByStatus(models.CarStatus) (int64, error)        { return 0, nil }
func (r *fakeCarRepo) Count() (int64, error)                                { return 0, nil }

// fakeCalendarRepo stores rows keyed by date, mirroring the unique
// (car_id, date) constraint for a single car.
type fakeCalendarRepo struct {
	rows map[string]models.CarAvailability
}

func newFakeCalendarRepo() *fakeCalendarRepo {
	return &fakeCalendarRepo{rows: map[string]models.CarAvailability{}}
}

func (r *fakeCalendarRepo) Upsert(rows []models.CarAvailability) error {
	for _, row := range rows {
		r.rows[row.Date] = row
	}
	return nil
}

func (r *fakeCalendarRepo) DeleteHostBlocked(_ string, dates []string) (int64, error) {
	var n int64
	for _, date := range dates {
		row, ok := r.rows[date]
		if !ok {
			continue
		}
		if row.Reason == models.AvailabilityBlockedByHost || row.Reason == models.AvailabilityMaintenance {
			delete(r.rows, date)
			n++
		}
	}
	return n, nil
}

func (r *fakeCalendarRepo) ListForCar(_, from, to string) ([]models.CarAvailability, error) {
	var out []models.CarAvailability
	for date, row := range r.rows {
		if date >= from && date <= to {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeCalendarRepo) ListUnavailable(_ string, dates []string) ([]models.CarAvailability, error) {
	var out []models.CarAvailability
	for _, date := range dates {
		if row, ok := r.rows[date]; ok && !row.IsAvailable {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeCalendarRepo) InsertBooked(carID string, dates []string, bookingID string) error {
	for _, date := range dates {
		r.rows[date] = models.CarAvailability{
			CarID:       carID,
			Date:        date,
			IsAvailable: false,
			Reason:      models.AvailabilityBooked,
			BookingID:   bookingID,
		}
	}
	return nil
}

func (r *fakeCalendarRepo) DeleteBooked(bookingID string) (int64, error) {
	var n int64
	for date, row := range r.rows {
		if row.BookingID == bookingID {
			delete(r.rows, date)
			n++
		}
	}
	return n, nil
}

func (r *fakeCalendarRepo) ListBlockedCarIDs([]string) ([]string, error) { return nil, nil }

func newService(repo *fakeCalendarRepo) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Repo: repo,
		CarRepo: &fakeCarRepo{cars: map[string]*models.Car{
			"c1": {ID: "c1", HostID: "h1", Status: models.CarActive},
		}},
	}
}

func TestBlockDatesCreatesRowPerDate(t *testing.T) {
	repo := newFakeCalendarRepo()
	svc := newService(repo)

	n, err := svc.BlockDates("h1", "c1", "2025-06-01", "2025-06-03", "")
	if err != nil {
		t.Fatalf("BlockDates: %v", err)
	}
	if n != 3 {
		t.Errorf("blocked %d dates, want 3", n)
	}
	for _, date := range []string{"2025-06-01", "2025-06-02", "2025-06-03"} {
		row, ok := repo.rows[date]
		if !ok {
			t.Fatalf("no row for %s", date)
		}
		if row.IsAvailable {
			t.Errorf("row %s should be unavailable", date)
		}
		if row.Reason != models.AvailabilityBlockedByHost {
			t.Errorf("row %s reason = %q, want blocked_by_host", date, row.Reason)
		}
	}
}

func TestBlockDatesRefusesBookedDate(t *testing.T) {
	repo := newFakeCalendarRepo()
	if err := repo.InsertBooked("c1", []string{"2025-06-02"}, "b9"); err != nil {
		t.Fatal(err)
	}
	svc := newService(repo)

	_, err := svc.BlockDates("h1", "c1", "2025-06-01", "2025-06-03", "")
	if err == nil {
		t.Fatal("expected error blocking over a booking hold")
	}
	if !strings.Contains(err.Error(), "b9") {
		t.Errorf("error %q should name the holding booking", err)
	}
}

func TestBlockDatesRejectsUnknownReason(t *testing.T) {
	svc := newService(newFakeCalendarRepo())
	if _, err := svc.BlockDates("h1", "c1", "2025-06-01", "2025-06-01", "vacation"); err == nil {
		t.Fatal("expected error for unknown reason")
	}
}

func TestBlockDatesRejectsForeignCar(t *testing.T) {
	svc := newService(newFakeCalendarRepo())
	if _, err := svc.BlockDates("h2", "c1", "2025-06-01", "2025-06-01", ""); err == nil {
		t.Fatal("expected ownership error")
	}
}

func TestBlockDatesRejectsOverlongRange(t *testing.T) {
	svc := newService(newFakeCalendarRepo())
	from := "2025-01-01"
	to := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	if _, err := svc.BlockDates("h1", "c1", from, to, ""); err == nil {
		t.Fatal("expected error for range over a year")
	}
}

func TestUnblockDatesKeepsBookingHolds(t *testing.T) {
	repo := newFakeCalendarRepo()
	svc := newService(repo)

	if _, err := svc.BlockDates("h1", "c1", "2025-06-01", "2025-06-01", ""); err != nil {
		t.Fatal(err)
	}
	if err := repo.InsertBooked("c1", []string{"2025-06-02"}, "b9"); err != nil {
		t.Fatal(err)
	}

	n, err := svc.UnblockDates("h1", "c1", "2025-06-01", "2025-06-02")
	if err != nil {
		t.Fatalf("UnblockDates: %v", err)
	}
	if n != 1 {
		t.Errorf("removed %d rows, want 1", n)
	}
	if _, ok := repo.rows["2025-06-02"]; !ok {
		t.Error("booking hold on 2025-06-02 must survive unblock")
	}
}

func TestSetCustomRate(t *testing.T) {
	repo := newFakeCalendarRepo()
	svc := newService(repo)

	n, err := svc.SetCustomRate("h1", "c1", "2025-12-24", "2025-12-26", 250000)
	if err != nil {
		t.Fatalf("SetCustomRate: %v", err)
	}
	if n != 3 {
		t.Errorf("overrode %d dates, want 3", n)
	}
	row := repo.rows["2025-12-25"]
	if !row.IsAvailable {
		t.Error("custom-rate dates must stay bookable")
	}
	if row.CustomDailyRate != 250000 {
		t.Errorf("custom rate = %d, want 250000", row.CustomDailyRate)
	}
}

func TestSetCustomRateRefusesUnavailableDate(t *testing.T) {
	repo := newFakeCalendarRepo()
	svc := newService(repo)
	if _, err := svc.BlockDates("h1", "c1", "2025-12-25", "2025-12-25", ""); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.SetCustomRate("h1", "c1", "2025-12-24", "2025-12-26", 250000); err == nil {
		t.Fatal("expected error overriding a blocked date")
	}
}

func TestSetCustomRateRejectsNonPositiveRate(t *testing.T) {
	svc := newService(newFakeCalendarRepo())
	if _, err := svc.SetCustomRate("h1", "c1", "2025-06-01", "2025-06-01", 0); err == nil {
		t.Fatal("expected error for zero rate")
	}
}
