package notification

import (
	"context"
	"fmt"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notify persists an in-app notification and sends a best-effort push. A
// failed push never fails the caller's operation.
func (s *DefaultNotificationService) Notify(userID, title, body, notifType string, data map[string]interface{}) error {
	n := &models.Notification{
		ID:     uuid.New().String(),
		UserID: userID,
		Title:  title,
		Body:   body,
		Type:   notifType,
		Data:   data,
	}
	if err := s.Repo.Create(n); err != nil {
		return fmt.Errorf("failed to persist notification: %w", err)
	}

	s.push(userID, title, body)
	return nil
}

// NotifyAdmins fans a notification out to every admin account.
func (s *DefaultNotificationService) NotifyAdmins(title, body, notifType string, data map[string]interface{}) error {
	admins, err := s.UserRepo.ListByRole(models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to list admins: %w", err)
	}
	for _, admin := range admins {
		if err := s.Notify(admin.ID, title, body, notifType, data); err != nil {
			utils.GetLogger().Error("Failed to notify admin",
				zap.String("adminID", admin.ID), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultNotificationService) push(userID, title, body string) {
	if utils.FCMClient == nil {
		return
	}
	user, err := s.UserRepo.GetByID(userID)
	if err != nil || user == nil || user.FCMToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	if _, err := utils.FCMClient.Send(context.Background(), msg); err != nil {
		utils.GetLogger().Warn("Failed to send push notification",
			zap.String("userID", userID), zap.Error(err))
	}
}

// List returns the user's notifications.
func (s *DefaultNotificationService) List(userID string, unreadOnly bool) ([]models.Notification, error) {
	return s.Repo.ListByUser(userID, unreadOnly)
}

// MarkRead marks one notification as read.
func (s *DefaultNotificationService) MarkRead(userID, notificationID string) error {
	return s.Repo.MarkRead(userID, notificationID)
}

// MarkAllRead marks all of the user's notifications as read.
func (s *DefaultNotificationService) MarkAllRead(userID string) (int64, error) {
	return s.Repo.MarkAllRead(userID)
}
