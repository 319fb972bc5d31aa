package models

import "time"

type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutCompleted  PayoutStatus = "completed"
	PayoutFailed     PayoutStatus = "failed"
)

// HostPayout aggregates the payable amount for a batch of completed
// bookings belonging to one host. Amount is in paise.
type HostPayout struct {
	ID            string       `bson:"id" json:"id"`
	HostID        string       `bson:"host_id" json:"host_id"`
	Amount        int64        `bson:"amount" json:"amount"`
	Currency      string       `bson:"currency" json:"currency"`
	BookingIDs    []string     `bson:"booking_ids" json:"booking_ids"`
	Status        PayoutStatus `bson:"status" json:"status"`
	FailureReason string       `bson:"failure_reason,omitempty" json:"failure_reason,omitempty"`
	ScheduledFor  *time.Time   `bson:"scheduled_for,omitempty" json:"scheduled_for,omitempty"`
	ProcessedAt   *time.Time   `bson:"processed_at,omitempty" json:"processed_at,omitempty"`
	CreatedAt     time.Time    `bson:"created_at" json:"created_at"`
}
