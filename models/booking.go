package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingDisputed  BookingStatus = "disputed"
)

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentDepositPaid   PaymentStatus = "deposit_paid"
	PaymentFullyPaid     PaymentStatus = "fully_paid"
	PaymentRefundPending PaymentStatus = "refund_pending"
	PaymentRefunded      PaymentStatus = "refunded"
	PaymentFailed        PaymentStatus = "failed"
)

type CancellationBy string

const (
	CancelledByGuest  CancellationBy = "guest"
	CancelledByHost   CancellationBy = "host"
	CancelledByAdmin  CancellationBy = "admin"
	CancelledBySystem CancellationBy = "system"
)

// Booking links a guest, a host and a car for a date range. All money
// amounts are in paise and are computed server-side; client-submitted
// amounts are never persisted.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	BookingNumber string        `bson:"booking_number" json:"booking_number"`
	CarID         string        `bson:"car_id" json:"car_id"`
	GuestID       string        `bson:"guest_id" json:"guest_id"`
	HostID        string        `bson:"host_id" json:"host_id"`
	Status        BookingStatus `bson:"status" json:"status"`
	PaymentStatus PaymentStatus `bson:"payment_status" json:"payment_status"`

	PickupDatetime       time.Time  `bson:"pickup_datetime" json:"pickup_datetime"`
	ReturnDatetime       time.Time  `bson:"return_datetime" json:"return_datetime"`
	ActualPickupDatetime *time.Time `bson:"actual_pickup_datetime,omitempty" json:"actual_pickup_datetime,omitempty"`
	ActualReturnDatetime *time.Time `bson:"actual_return_datetime,omitempty" json:"actual_return_datetime,omitempty"`
	PickupLocation       string     `bson:"pickup_location" json:"pickup_location"`
	ReturnLocation       string     `bson:"return_location,omitempty" json:"return_location,omitempty"`

	DurationHours   int   `bson:"duration_hours" json:"duration_hours"`
	BaseAmount      int64 `bson:"base_amount" json:"base_amount"`
	ServiceFee      int64 `bson:"service_fee" json:"service_fee"`
	SecurityDeposit int64 `bson:"security_deposit" json:"security_deposit"`
	TotalAmount     int64 `bson:"total_amount" json:"total_amount"`
	HostPayout      int64 `bson:"host_payout" json:"host_payout"`
	RefundAmount    int64 `bson:"refund_amount" json:"refund_amount"`

	CancelledAt        *time.Time     `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
	CancelledBy        CancellationBy `bson:"cancelled_by,omitempty" json:"cancelled_by,omitempty"`
	CancellationReason string         `bson:"cancellation_reason,omitempty" json:"cancellation_reason,omitempty"`

	OdometerStart  int64  `bson:"odometer_start,omitempty" json:"odometer_start,omitempty"`
	OdometerEnd    int64  `bson:"odometer_end,omitempty" json:"odometer_end,omitempty"`
	FuelLevelStart string `bson:"fuel_level_start,omitempty" json:"fuel_level_start,omitempty"`
	FuelLevelEnd   string `bson:"fuel_level_end,omitempty" json:"fuel_level_end,omitempty"`

	GuestNotes string `bson:"guest_notes,omitempty" json:"guest_notes,omitempty"`
	HostNotes  string `bson:"host_notes,omitempty" json:"host_notes,omitempty"`
	AdminNotes string `bson:"admin_notes,omitempty" json:"admin_notes,omitempty"`

	// Manual UPI flow: the guest submits a transaction reference which an
	// admin later verifies by hand.
	UPITransactionID   string     `bson:"upi_transaction_id,omitempty" json:"upi_transaction_id,omitempty"`
	PaymentSubmittedAt *time.Time `bson:"payment_submitted_at,omitempty" json:"payment_submitted_at,omitempty"`

	// PayoutID links the booking to the host payout batch it settled in.
	PayoutID string `bson:"payout_id,omitempty" json:"payout_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PriceBreakdown is the server-computed quote for a date range.
type PriceBreakdown struct {
	Hours           int   `json:"hours"`
	Days            int   `json:"days"`
	BaseAmount      int64 `json:"base_amount"`
	ServiceFee      int64 `json:"service_fee"`
	SecurityDeposit int64 `json:"security_deposit"`
	TotalAmount     int64 `json:"total_amount"`
	HostPayout      int64 `json:"host_payout"`
}

// BookingQuote is returned by the quote endpoint.
type BookingQuote struct {
	CarID     string         `json:"car_id"`
	Breakdown PriceBreakdown `json:"breakdown"`
	UPILink   string         `json:"upi_link"`
}

// BookingRequest is the guest-supplied booking payload. Amounts are absent
// on purpose; the server computes them.
type BookingRequest struct {
	CarID          string    `json:"car_id" binding:"required"`
	PickupDatetime time.Time `json:"pickup_datetime" binding:"required"`
	ReturnDatetime time.Time `json:"return_datetime" binding:"required"`
	PickupLocation string    `json:"pickup_location" binding:"required"`
	GuestNotes     string    `json:"guest_notes"`
}
