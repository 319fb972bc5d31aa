package models

import "time"

type ReviewType string

const (
	ReviewGuestToHost ReviewType = "guest_to_host"
	ReviewHostToGuest ReviewType = "host_to_guest"
)

// Review is one directional rating tied to a completed booking. Sub-ratings
// are optional; zero means not provided.
type Review struct {
	ID         string     `bson:"id" json:"id"`
	BookingID  string     `bson:"booking_id" json:"booking_id"`
	ReviewerID string     `bson:"reviewer_id" json:"reviewer_id"`
	RevieweeID string     `bson:"reviewee_id" json:"reviewee_id"`
	CarID      string     `bson:"car_id,omitempty" json:"car_id,omitempty"`
	Type       ReviewType `bson:"type" json:"type"`
	Rating     int        `bson:"rating" json:"rating"`
	Comment    string     `bson:"comment,omitempty" json:"comment,omitempty"`

	CleanlinessRating   int `bson:"cleanliness_rating,omitempty" json:"cleanliness_rating,omitempty"`
	CommunicationRating int `bson:"communication_rating,omitempty" json:"communication_rating,omitempty"`
	AccuracyRating      int `bson:"accuracy_rating,omitempty" json:"accuracy_rating,omitempty"`
	ValueRating         int `bson:"value_rating,omitempty" json:"value_rating,omitempty"`

	IsPublic      bool      `bson:"is_public" json:"is_public"`
	IsFlagged     bool      `bson:"is_flagged" json:"is_flagged"`
	FlaggedReason string    `bson:"flagged_reason,omitempty" json:"flagged_reason,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// ReviewInput is the submission payload.
type ReviewInput struct {
	BookingID           string `json:"booking_id" binding:"required"`
	Rating              int    `json:"rating" binding:"required,min=1,max=5"`
	Comment             string `json:"comment"`
	CleanlinessRating   int    `json:"cleanliness_rating" binding:"omitempty,min=1,max=5"`
	CommunicationRating int    `json:"communication_rating" binding:"omitempty,min=1,max=5"`
	AccuracyRating      int    `json:"accuracy_rating" binding:"omitempty,min=1,max=5"`
	ValueRating         int    `json:"value_rating" binding:"omitempty,min=1,max=5"`
}
