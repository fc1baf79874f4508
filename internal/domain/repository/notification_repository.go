package repository

import (
	"context"

	"zembil/internal/domain/entity"
)

// NotificationRepository defines the persistence operations for in-app notifications.
type NotificationRepository interface {
	// CreateNotifications inserts the notifications in one batch.
	CreateNotifications(ctx context.Context, notifications []*entity.Notification) error

	// ListNotificationsByUser returns the user's notifications, newest first.
	ListNotificationsByUser(ctx context.Context, userID uint) ([]*entity.Notification, error)

	// MarkNotificationsSeen flags all of the user's notifications as seen.
	MarkNotificationsSeen(ctx context.Context, userID uint) error

	// DeleteNotificationsByUser removes all of the user's notifications.
	DeleteNotificationsByUser(ctx context.Context, userID uint) error
}
