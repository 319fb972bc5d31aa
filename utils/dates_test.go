package utils

import (
	"reflect"
	"testing"
	"time"
)

func TestEnumerateDatesInclusive(t *testing.T) {
	from := time.Date(2024, 12, 24, 10, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 26, 10, 0, 0, 0, time.UTC)

	got := EnumerateDates(from, to)
	want := []string{"2024-12-24", "2024-12-25", "2024-12-26"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EnumerateDates = %v, want %v", got, want)
	}
}

func TestEnumerateDatesSingleDay(t *testing.T) {
	day := time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC)
	got := EnumerateDates(day, day.Add(5*time.Hour))
	want := []string{"2025-01-01"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EnumerateDates = %v, want %v", got, want)
	}
}

func TestEnumerateDatesCrossesMonthBoundary(t *testing.T) {
	from := time.Date(2025, 1, 31, 22, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 2, 1, 0, 0, 0, time.UTC)

	got := EnumerateDates(from, to)
	want := []string{"2025-01-31", "2025-02-01", "2025-02-02"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EnumerateDates = %v, want %v", got, want)
	}
}

func TestEnumerateDatesReversedRange(t *testing.T) {
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if got := EnumerateDates(from, from.AddDate(0, 0, -1)); got != nil {
		t.Errorf("reversed range should yield nil, got %v", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-12-24")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.December || d.Day() != 24 {
		t.Errorf("parsed %v, want 2024-12-24", d)
	}
	if d.Location() != time.UTC {
		t.Errorf("parsed location %v, want UTC", d.Location())
	}

	if _, err := ParseDate("24/12/2024"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
