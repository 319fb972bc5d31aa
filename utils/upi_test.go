package utils

import (
	"net/url"
	"strings"
	"testing"
)

func TestBuildUPILink(t *testing.T) {
	link := BuildUPILink("godrive@okaxis", "GoDrive", 660000, "GoDrive-GD-20241224-4F7A2C")

	if !strings.HasPrefix(link, "upi://pay?") {
		t.Fatalf("link %q should start with upi://pay?", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link did not parse: %v", err)
	}
	q := u.Query()

	if got := q.Get("pa"); got != "godrive@okaxis" {
		t.Errorf("pa = %q, want godrive@okaxis", got)
	}
	if got := q.Get("pn"); got != "GoDrive" {
		t.Errorf("pn = %q, want GoDrive", got)
	}
	if got := q.Get("am"); got != "6600.00" {
		t.Errorf("am = %q, want 6600.00", got)
	}
	if got := q.Get("cu"); got != "INR" {
		t.Errorf("cu = %q, want INR", got)
	}
	if got := q.Get("tn"); got != "GoDrive-GD-20241224-4F7A2C" {
		t.Errorf("tn = %q, want the booking note", got)
	}
}

func TestBuildUPILinkAmountRendering(t *testing.T) {
	cases := []struct {
		paise int64
		want  string
	}{
		{100, "1.00"},
		{150050, "1500.50"},
		{99, "0.99"},
		{5, "0.05"},
		{123456789, "1234567.89"},
	}
	for _, tc := range cases {
		link := BuildUPILink("x@upi", "X", tc.paise, "note")
		u, err := url.Parse(link)
		if err != nil {
			t.Fatalf("link did not parse: %v", err)
		}
		if got := u.Query().Get("am"); got != tc.want {
			t.Errorf("am for %d paise = %q, want %q", tc.paise, got, tc.want)
		}
	}
}
