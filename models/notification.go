package models

import "time"

// Notification is an in-app notification persisted per user; a best-effort
// FCM push mirrors it when the user has a device token.
type Notification struct {
	ID        string                 `bson:"id" json:"id"`
	UserID    string                 `bson:"user_id" json:"user_id"`
	Title     string                 `bson:"title" json:"title"`
	Body      string                 `bson:"body" json:"body"`
	Type      string                 `bson:"type,omitempty" json:"type,omitempty"`
	Data      map[string]interface{} `bson:"data,omitempty" json:"data,omitempty"`
	IsRead    bool                   `bson:"is_read" json:"is_read"`
	ReadAt    *time.Time             `bson:"read_at,omitempty" json:"read_at,omitempty"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
}
