package booking

import (
	"regexp"
	"testing"
	"time"
)

func TestComputePriceTwoFullDays(t *testing.T) {
	pickup := time.Date(2024, 12, 24, 10, 0, 0, 0, time.UTC)
	ret := time.Date(2024, 12, 26, 10, 0, 0, 0, time.UTC)

	p := ComputePrice(150000, 300000, pickup, ret)

	if p.Hours != 48 {
		t.Errorf("hours = %d, want 48", p.Hours)
	}
	if p.Days != 2 {
		t.Errorf("days = %d, want 2", p.Days)
	}
	if p.BaseAmount != 300000 {
		t.Errorf("base = %d, want 300000", p.BaseAmount)
	}
	if p.ServiceFee != 60000 {
		t.Errorf("service fee = %d, want 60000", p.ServiceFee)
	}
	if p.TotalAmount != 660000 {
		t.Errorf("total = %d, want 660000", p.TotalAmount)
	}
	if p.HostPayout != 240000 {
		t.Errorf("host payout = %d, want 240000", p.HostPayout)
	}
}

func TestComputePricePartialDayRoundsUp(t *testing.T) {
	pickup := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		ret   time.Time
		hours int
		days  int
	}{
		{"one minute over a day", pickup.Add(24*time.Hour + time.Minute), 25, 2},
		{"exactly one day", pickup.Add(24 * time.Hour), 24, 1},
		{"short city hop", pickup.Add(5 * time.Hour), 5, 1},
		{"two and a half days", pickup.Add(60 * time.Hour), 60, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ComputePrice(100000, 0, pickup, tc.ret)
			if p.Hours != tc.hours {
				t.Errorf("hours = %d, want %d", p.Hours, tc.hours)
			}
			if p.Days != tc.days {
				t.Errorf("days = %d, want %d", p.Days, tc.days)
			}
			if p.BaseAmount != int64(tc.days)*100000 {
				t.Errorf("base = %d, want %d", p.BaseAmount, int64(tc.days)*100000)
			}
		})
	}
}

func TestComputePriceDepositExcludedFromPayout(t *testing.T) {
	pickup := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	p := ComputePrice(200000, 500000, pickup, pickup.Add(24*time.Hour))

	if p.TotalAmount != p.BaseAmount+p.ServiceFee+p.SecurityDeposit {
		t.Errorf("total %d does not equal base %d + fee %d + deposit %d",
			p.TotalAmount, p.BaseAmount, p.ServiceFee, p.SecurityDeposit)
	}
	if p.HostPayout != p.BaseAmount-p.ServiceFee {
		t.Errorf("host payout %d should be base minus fee, got base %d fee %d",
			p.HostPayout, p.BaseAmount, p.ServiceFee)
	}
}

func TestNewBookingNumberFormat(t *testing.T) {
	now := time.Date(2024, 12, 24, 15, 4, 5, 0, time.UTC)
	number, err := NewBookingNumber(now)
	if err != nil {
		t.Fatalf("NewBookingNumber: %v", err)
	}

	pattern := regexp.MustCompile(`^GD-20241224-[0-9A-F]{6}$`)
	if !pattern.MatchString(number) {
		t.Errorf("booking number %q does not match %s", number, pattern)
	}
}

func TestNewBookingNumberVaries(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		n, err := NewBookingNumber(now)
		if err != nil {
			t.Fatalf("NewBookingNumber: %v", err)
		}
		seen[n] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected varying suffixes, got %d distinct from 20 draws", len(seen))
	}
}
