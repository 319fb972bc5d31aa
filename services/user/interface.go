package user

import (
	"mime/multipart"

	documentRepo "github.com/chrisdemonxxx/godrive/database/repository/document"
	userRepo "github.com/chrisdemonxxx/godrive/database/repository/user"
	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/services/storage"
)

// UserService covers phone-OTP authentication, profile management, the
// host upgrade flow and KYC document handling.
type UserService interface {
	// Authentication
	InitiateAuth(phone string) error
	VerifyAuth(phone, otp string) (*AuthResponse, error)
	AuthenticateAdmin(email, password string) (*AuthResponse, error)
	RevokeToken(userID string) error

	// Profile
	GetUserByID(userID string) (*models.User, error)
	UpdateProfile(userID string, update models.ProfileUpdate) (*models.User, error)
	BecomeHost(userID string) (*models.User, error)
	Deactivate(userID string) error

	// KYC
	SubmitDocument(userID string, docType models.DocumentType, docNumber, expiryDate string, front, back *multipart.FileHeader) (*models.UserDocument, error)
	ListDocuments(userID string) ([]models.UserDocument, error)
	DocumentURL(requesterID string, doc *models.UserDocument) (front, back string, err error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo    userRepo.UserRepository
	DocRepo documentRepo.DocumentRepository
	Storage storage.StorageService
}

// AuthResponse carries the session token issued after a successful sign-in.
type AuthResponse struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	Role      string `json:"role"`
	KycStatus string `json:"kyc_status"`
	IsNewUser bool   `json:"is_new_user,omitempty"`
}
