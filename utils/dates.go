package utils

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date layout used by availability rows.
const DateLayout = "2006-01-02"

// EnumerateDates returns every calendar date touched by the [from, to]
// range, inclusive on both ends, in DateLayout form. Times are truncated to
// their UTC date before enumeration.
func EnumerateDates(from, to time.Time) []string {
	start := from.UTC().Truncate(24 * time.Hour)
	end := to.UTC().Truncate(24 * time.Hour)
	if end.Before(start) {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

// ParseDate parses a DateLayout string as a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
