package models

import "time"

// Availability block reasons.
const (
	AvailabilityBlockedByHost = "blocked_by_host"
	AvailabilityBooked        = "booked"
	AvailabilityMaintenance   = "maintenance"
)

// CarAvailability is one row per (car, date). A date without a row is open
// at the car's standard daily rate. Date uses the "2006-01-02" layout.
type CarAvailability struct {
	ID              string    `bson:"id" json:"id"`
	CarID           string    `bson:"car_id" json:"car_id"`
	Date            string    `bson:"date" json:"date"`
	IsAvailable     bool      `bson:"is_available" json:"is_available"`
	CustomDailyRate int64     `bson:"custom_daily_rate,omitempty" json:"custom_daily_rate,omitempty"`
	Reason          string    `bson:"reason,omitempty" json:"reason,omitempty"`
	BookingID       string    `bson:"booking_id,omitempty" json:"booking_id,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
