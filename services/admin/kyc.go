package admin

import (
	"fmt"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ListPendingDocuments returns KYC documents awaiting review.
func (s *DefaultAdminService) ListPendingDocuments() ([]models.UserDocument, error) {
	return s.DocRepo.ListPending()
}

// ReviewDocument records the outcome of a manual KYC check and moves the
// owner's KYC status along with it.
func (s *DefaultAdminService) ReviewDocument(adminID, documentID string, approve bool, reason string) (*models.UserDocument, error) {
	doc, err := s.DocRepo.GetByID(documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("document not found")
	}
	if doc.VerificationStatus != models.VerificationPending {
		return nil, fmt.Errorf("document was already reviewed")
	}

	status := models.VerificationRejected
	kyc := models.KycRejected
	if approve {
		status = models.VerificationVerified
		kyc = models.KycVerified
		reason = ""
	}

	if err := s.DocRepo.SetVerification(documentID, status, adminID, reason); err != nil {
		return nil, err
	}
	doc.VerificationStatus = status
	doc.RejectionReason = reason

	if err := s.UserRepo.UpdateSetDocument(doc.UserID, bson.M{"kyc_status": kyc}); err != nil {
		utils.GetLogger().Error("Failed to update user KYC status",
			zap.String("userID", doc.UserID), zap.Error(err))
	}

	title, body := "KYC verified", "Your identity documents were verified. You can now book cars."
	if !approve {
		title = "KYC rejected"
		body = fmt.Sprintf("Your %s was rejected: %s", doc.DocumentType, reason)
	}
	if err := s.Notifier.Notify(doc.UserID, title, body, "kyc_review",
		map[string]interface{}{"document_id": doc.ID}); err != nil {
		utils.GetLogger().Warn("Failed to notify user of KYC outcome", zap.Error(err))
	}

	return doc, nil
}
