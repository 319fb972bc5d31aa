package documentRepo

import "github.com/chrisdemonxxx/godrive/models"

// DocumentRepository defines persistence operations for KYC documents.
type DocumentRepository interface {
	Create(doc *models.UserDocument) error
	GetByID(id string) (*models.UserDocument, error)
	ListByUser(userID string) ([]models.UserDocument, error)
	ListPending() ([]models.UserDocument, error)
	SetVerification(id string, status models.VerificationStatus, reviewerID, reason string) error
}
