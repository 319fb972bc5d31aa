package models

import "time"

// CarSearchParams are the supported search predicates. Zero values mean
// "no filter".
type CarSearchParams struct {
	City           string
	Lat            float64
	Lng            float64
	RadiusMeters   float64
	PickupDate     *time.Time
	ReturnDate     *time.Time
	Transmission   TransmissionType
	FuelType       FuelType
	MinSeats       int
	MaxSeats       int
	MinPrice       int64
	MaxPrice       int64
	Features       []string
	InstantBooking *bool
	SortBy         string // created_at | price_asc | price_desc | rating | distance
	Page           int
	Limit          int
}

// CarSearchResult is a car enriched with search-time fields.
type CarSearchResult struct {
	Car
	DistanceMeters float64 `json:"distance_meters,omitempty"`
	TotalPrice     int64   `json:"total_price,omitempty"`
	PrimaryImage   string  `json:"primary_image,omitempty"`
}

// CarSearchPage is one page of search results.
type CarSearchPage struct {
	Data    []CarSearchResult `json:"data"`
	Total   int               `json:"total"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	HasMore bool              `json:"has_more"`
}

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalCars         int64 `json:"total_cars"`
	ActiveCars        int64 `json:"active_cars"`
	PendingApprovals  int64 `json:"pending_approvals"`
	TotalBookings     int64 `json:"total_bookings"`
	PendingPayments   int64 `json:"pending_payments"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
}
