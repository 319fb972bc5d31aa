package models

import "time"

// UserRole describes what a user may do on the platform.
type UserRole string

const (
	RoleGuest UserRole = "guest"
	RoleHost  UserRole = "host"
	RoleBoth  UserRole = "both"
	RoleAdmin UserRole = "admin"
)

// CanHost reports whether the role allows listing cars.
func (r UserRole) CanHost() bool {
	return r == RoleHost || r == RoleBoth || r == RoleAdmin
}

// KycStatus tracks identity verification progress.
type KycStatus string

const (
	KycPending   KycStatus = "pending"
	KycSubmitted KycStatus = "submitted"
	KycVerified  KycStatus = "verified"
	KycRejected  KycStatus = "rejected"
)

// User represents a platform user. Users are created on first phone sign-in
// and are never hard-deleted; IsActive gates access instead.
type User struct {
	ID              string    `bson:"id" json:"id"`
	Phone           string    `bson:"phone" json:"phone"`
	Email           string    `bson:"email,omitempty" json:"email,omitempty"`
	FullName        string    `bson:"full_name,omitempty" json:"full_name,omitempty"`
	AvatarURL       string    `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Role            UserRole  `bson:"role" json:"role"`
	KycStatus       KycStatus `bson:"kyc_status" json:"kyc_status"`
	IsPhoneVerified bool      `bson:"is_phone_verified" json:"is_phone_verified"`
	IsEmailVerified bool      `bson:"is_email_verified" json:"is_email_verified"`
	IsActive        bool      `bson:"is_active" json:"is_active"`

	DateOfBirth  string `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	AddressLine1 string `bson:"address_line1,omitempty" json:"address_line1,omitempty"`
	AddressLine2 string `bson:"address_line2,omitempty" json:"address_line2,omitempty"`
	City         string `bson:"city,omitempty" json:"city,omitempty"`
	State        string `bson:"state,omitempty" json:"state,omitempty"`
	Pincode      string `bson:"pincode,omitempty" json:"pincode,omitempty"`

	TotalTripsAsGuest    int     `bson:"total_trips_as_guest" json:"total_trips_as_guest"`
	TotalTripsAsHost     int     `bson:"total_trips_as_host" json:"total_trips_as_host"`
	AverageRatingAsGuest float64 `bson:"average_rating_as_guest" json:"average_rating_as_guest"`
	AverageRatingAsHost  float64 `bson:"average_rating_as_host" json:"average_rating_as_host"`

	// PasswordHash is set for admin accounts only; regular users
	// authenticate with phone OTP.
	PasswordHash string `bson:"password_hash,omitempty" json:"-"`
	// TokenHash is the SHA-256 hash of the currently valid session token.
	TokenHash string `bson:"token_hash,omitempty" json:"-"`
	// FCMToken is the device push token, when the client registered one.
	FCMToken string `bson:"fcm_token,omitempty" json:"-"`

	LastLoginAt *time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

// ProfileUpdate carries the fields a user may edit on their own profile.
type ProfileUpdate struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	AvatarURL    string `json:"avatar_url"`
	DateOfBirth  string `json:"date_of_birth"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	FCMToken     string `json:"fcm_token"`
}
