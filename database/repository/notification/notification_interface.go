package notificationRepo

import "github.com/chrisdemonxxx/godrive/models"

// NotificationRepository defines persistence operations for in-app
// notifications.
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByUser(userID string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) (int64, error)
}
