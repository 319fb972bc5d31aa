package notification

import (
	notificationRepo "github.com/chrisdemonxxx/godrive/database/repository/notification"
	userRepo "github.com/chrisdemonxxx/godrive/database/repository/user"
	"github.com/chrisdemonxxx/godrive/models"
)

// NotificationService persists in-app notifications and mirrors them to FCM
// when the recipient registered a device token.
type NotificationService interface {
	Notify(userID, title, body, notifType string, data map[string]interface{}) error
	NotifyAdmins(title, body, notifType string, data map[string]interface{}) error
	List(userID string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(userID, notificationID string) error
	MarkAllRead(userID string) (int64, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo     notificationRepo.NotificationRepository
	UserRepo userRepo.UserRepository
}
