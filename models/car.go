package models

import "time"

// CarStatus is the listing lifecycle state.
type CarStatus string

const (
	CarDraft           CarStatus = "draft"
	CarPendingApproval CarStatus = "pending_approval"
	CarActive          CarStatus = "active"
	CarInactive        CarStatus = "inactive"
	CarSuspended       CarStatus = "suspended"
)

type TransmissionType string

const (
	TransmissionManual    TransmissionType = "manual"
	TransmissionAutomatic TransmissionType = "automatic"
)

type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelCNG      FuelType = "cng"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

// CarImage is one photo attached to a listing. ImageID is the storage
// public ID; URL is the resolved public URL.
type CarImage struct {
	ID           string    `bson:"id" json:"id"`
	ImageID      string    `bson:"image_id" json:"image_id"`
	URL          string    `bson:"url" json:"url"`
	IsPrimary    bool      `bson:"is_primary" json:"is_primary"`
	DisplayOrder int       `bson:"display_order" json:"display_order"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Car is a host's vehicle listing. All money amounts are in paise.
type Car struct {
	ID                 string           `bson:"id" json:"id"`
	HostID             string           `bson:"host_id" json:"host_id"`
	Make               string           `bson:"make" json:"make"`
	Model              string           `bson:"model" json:"model"`
	Year               int              `bson:"year" json:"year"`
	Variant            string           `bson:"variant,omitempty" json:"variant,omitempty"`
	Transmission       TransmissionType `bson:"transmission" json:"transmission"`
	FuelType           FuelType         `bson:"fuel_type" json:"fuel_type"`
	Seats              int              `bson:"seats" json:"seats"`
	Color              string           `bson:"color,omitempty" json:"color,omitempty"`
	RegistrationNumber string           `bson:"registration_number" json:"registration_number"`

	Status          CarStatus  `bson:"status" json:"status"`
	RejectionReason string     `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	ApprovedAt      *time.Time `bson:"approved_at,omitempty" json:"approved_at,omitempty"`
	ApprovedBy      string     `bson:"approved_by,omitempty" json:"approved_by,omitempty"`

	LocationAddress string  `bson:"location_address" json:"location_address"`
	LocationArea    string  `bson:"location_area" json:"location_area"`
	LocationCity    string  `bson:"location_city" json:"location_city"`
	LocationLat     float64 `bson:"location_lat,omitempty" json:"location_lat,omitempty"`
	LocationLng     float64 `bson:"location_lng,omitempty" json:"location_lng,omitempty"`

	HourlyRate      int64 `bson:"hourly_rate,omitempty" json:"hourly_rate,omitempty"`
	DailyRate       int64 `bson:"daily_rate" json:"daily_rate"`
	WeeklyRate      int64 `bson:"weekly_rate,omitempty" json:"weekly_rate,omitempty"`
	MonthlyRate     int64 `bson:"monthly_rate,omitempty" json:"monthly_rate,omitempty"`
	SecurityDeposit int64 `bson:"security_deposit" json:"security_deposit"`

	UnlimitedKm   bool  `bson:"unlimited_km" json:"unlimited_km"`
	KmLimitPerDay int   `bson:"km_limit_per_day,omitempty" json:"km_limit_per_day,omitempty"`
	ExtraKmCharge int64 `bson:"extra_km_charge,omitempty" json:"extra_km_charge,omitempty"`

	Features           []string `bson:"features" json:"features"`
	Guidelines         string   `bson:"guidelines,omitempty" json:"guidelines,omitempty"`
	PickupInstructions string   `bson:"pickup_instructions,omitempty" json:"pickup_instructions,omitempty"`
	InstantBooking     bool     `bson:"instant_booking" json:"instant_booking"`
	MinBookingHours    int      `bson:"min_booking_hours" json:"min_booking_hours"`
	MaxBookingDays     int      `bson:"max_booking_days" json:"max_booking_days"`
	AdvanceNoticeHours int      `bson:"advance_notice_hours" json:"advance_notice_hours"`

	TotalTrips    int     `bson:"total_trips" json:"total_trips"`
	TotalEarnings int64   `bson:"total_earnings" json:"total_earnings"`
	AverageRating float64 `bson:"average_rating" json:"average_rating"`
	TotalReviews  int     `bson:"total_reviews" json:"total_reviews"`

	Images []CarImage `bson:"images,omitempty" json:"images,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PrimaryImageURL returns the URL of the primary photo, or the first photo
// when none is marked primary.
func (c *Car) PrimaryImageURL() string {
	for _, img := range c.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(c.Images) > 0 {
		return c.Images[0].URL
	}
	return ""
}

// CarInput is the host-supplied listing payload.
type CarInput struct {
	Make               string           `json:"make" binding:"required"`
	Model              string           `json:"model" binding:"required"`
	Year               int              `json:"year" binding:"required"`
	Variant            string           `json:"variant"`
	Transmission       TransmissionType `json:"transmission" binding:"required"`
	FuelType           FuelType         `json:"fuel_type" binding:"required"`
	Seats              int              `json:"seats" binding:"required"`
	Color              string           `json:"color"`
	RegistrationNumber string           `json:"registration_number" binding:"required"`
	LocationAddress    string           `json:"location_address" binding:"required"`
	LocationArea       string           `json:"location_area"`
	LocationCity       string           `json:"location_city" binding:"required"`
	LocationLat        float64          `json:"location_lat"`
	LocationLng        float64          `json:"location_lng"`
	HourlyRate         int64            `json:"hourly_rate"`
	DailyRate          int64            `json:"daily_rate" binding:"required"`
	WeeklyRate         int64            `json:"weekly_rate"`
	MonthlyRate        int64            `json:"monthly_rate"`
	SecurityDeposit    int64            `json:"security_deposit"`
	UnlimitedKm        bool             `json:"unlimited_km"`
	KmLimitPerDay      int              `json:"km_limit_per_day"`
	ExtraKmCharge      int64            `json:"extra_km_charge"`
	Features           []string         `json:"features"`
	Guidelines         string           `json:"guidelines"`
	PickupInstructions string           `json:"pickup_instructions"`
	InstantBooking     bool             `json:"instant_booking"`
	MinBookingHours    int              `json:"min_booking_hours"`
	MaxBookingDays     int              `json:"max_booking_days"`
	AdvanceNoticeHours int              `json:"advance_notice_hours"`
}
