package user

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/services/storage"
	"github.com/chrisdemonxxx/godrive/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const documentURLTTL = 15 * time.Minute

// SubmitDocument stores a KYC document's images and creates a pending
// document record. The user's KYC status moves to submitted.
func (s *DefaultUserService) SubmitDocument(userID string, docType models.DocumentType, docNumber, expiryDate string, front, back *multipart.FileHeader) (*models.UserDocument, error) {
	if front == nil {
		return nil, fmt.Errorf("front image is required")
	}

	ctx := context.Background()
	frontID, err := s.uploadDocumentImage(ctx, front)
	if err != nil {
		return nil, err
	}

	var backID string
	if back != nil {
		backID, err = s.uploadDocumentImage(ctx, back)
		if err != nil {
			return nil, err
		}
	}

	doc := &models.UserDocument{
		ID:                 uuid.New().String(),
		UserID:             userID,
		DocumentType:       docType,
		DocumentNumber:     docNumber,
		FrontImageID:       frontID,
		BackImageID:        backID,
		ExpiryDate:         expiryDate,
		VerificationStatus: models.VerificationPending,
	}
	if err := s.DocRepo.Create(doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	if err := s.Repo.UpdateSetDocument(userID, bson.M{"kyc_status": models.KycSubmitted}); err != nil {
		utils.GetLogger().Error("Failed to move user to submitted KYC",
			zap.String("userID", userID), zap.Error(err))
	}

	return doc, nil
}

// uploadDocumentImage spools the multipart upload to disk and pushes it into
// the private KYC folder, returning the storage public ID.
func (s *DefaultUserService) uploadDocumentImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "kyc-*"+filepath.Ext(fh.Filename))
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to spool upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to flush upload: %w", err)
	}

	publicID, err := s.Storage.UploadFile(ctx, tmp.Name(), storage.FolderDocuments)
	if err != nil {
		return "", fmt.Errorf("failed to store document image: %w", err)
	}
	return publicID, nil
}

// ListDocuments returns all documents a user has uploaded.
func (s *DefaultUserService) ListDocuments(userID string) ([]models.UserDocument, error) {
	return s.DocRepo.ListByUser(userID)
}

// DocumentURL signs short-lived URLs for a document's images. Only the
// owner and admins may see them.
func (s *DefaultUserService) DocumentURL(requesterID string, doc *models.UserDocument) (string, string, error) {
	if requesterID != doc.UserID {
		requester, err := s.Repo.GetByIDWithProjection(requesterID, bson.M{"role": 1})
		if err != nil {
			return "", "", fmt.Errorf("failed to check requester: %w", err)
		}
		if requester == nil || requester.Role != models.RoleAdmin {
			return "", "", fmt.Errorf("not authorized to view this document")
		}
	}

	front, err := s.Storage.GetSecureDownloadURL(doc.FrontImageID, documentURLTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign front image URL: %w", err)
	}
	var back string
	if doc.BackImageID != "" {
		back, err = s.Storage.GetSecureDownloadURL(doc.BackImageID, documentURLTTL)
		if err != nil {
			return "", "", fmt.Errorf("failed to sign back image URL: %w", err)
		}
	}
	return front, back, nil
}
