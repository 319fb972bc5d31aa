package handlers

import (
	"net/http"

	"github.com/chrisdemonxxx/godrive/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubmitDocument accepts a multipart KYC upload: document_type,
// document_number, expiry_date plus front/back image files.
func (h *UserHandler) SubmitDocument(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	docType := models.DocumentType(c.PostForm("document_type"))
	switch docType {
	case models.DocDrivingLicense, models.DocAadhaar, models.DocPAN, models.DocRC:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document_type"})
		return
	}

	front, err := c.FormFile("front_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "front_image file is required"})
		return
	}
	back, _ := c.FormFile("back_image")

	doc, err := h.Service.SubmitDocument(userID, docType,
		c.PostForm("document_number"), c.PostForm("expiry_date"), front, back)
	if err != nil {
		getLogger(c).Error("Failed to submit document", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit document"})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// ListDocuments returns the caller's uploaded documents.
func (h *UserHandler) ListDocuments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	docs, err := h.Service.ListDocuments(userID)
	if err != nil {
		getLogger(c).Error("Failed to list documents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents"})
		return
	}
	c.JSON(http.StatusOK, docs)
}
