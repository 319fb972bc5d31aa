package models

import "time"

// DocumentType enumerates the identity documents accepted for KYC.
type DocumentType string

const (
	DocDrivingLicense DocumentType = "driving_license"
	DocAadhaar        DocumentType = "aadhaar"
	DocPAN            DocumentType = "pan"
	DocRC             DocumentType = "rc"
)

// VerificationStatus is the review state of a single document.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// UserDocument is one uploaded KYC document. Image fields hold storage
// public IDs, not raw URLs; download URLs are signed on demand.
type UserDocument struct {
	ID                 string             `bson:"id" json:"id"`
	UserID             string             `bson:"user_id" json:"user_id"`
	DocumentType       DocumentType       `bson:"document_type" json:"document_type"`
	DocumentNumber     string             `bson:"document_number,omitempty" json:"document_number,omitempty"`
	FrontImageID       string             `bson:"front_image_id" json:"front_image_id"`
	BackImageID        string             `bson:"back_image_id,omitempty" json:"back_image_id,omitempty"`
	ExpiryDate         string             `bson:"expiry_date,omitempty" json:"expiry_date,omitempty"`
	VerificationStatus VerificationStatus `bson:"verification_status" json:"verification_status"`
	RejectionReason    string             `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	VerifiedAt         *time.Time         `bson:"verified_at,omitempty" json:"verified_at,omitempty"`
	VerifiedBy         string             `bson:"verified_by,omitempty" json:"verified_by,omitempty"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
}
