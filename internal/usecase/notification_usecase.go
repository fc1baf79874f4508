package usecase

import (
	"context"

	"zembil/internal/domain/entity"
)

// NotificationUsecase exposes a user's in-app notifications.
type NotificationUsecase interface {
	// ListNotifications returns the caller's notifications and marks them seen.
	ListNotifications(ctx context.Context, userID uint) ([]*entity.Notification, error)
	ClearNotifications(ctx context.Context, userID uint) error
}
