package postgres

import (
	"context"

	"zembil/internal/domain/entity"
	"zembil/internal/domain/repository"
	"zembil/internal/domain/service"
)

// notificationSink stores notifications as rows through the transaction-bound repository.
type notificationSink struct{}

// NewNotificationSink returns the database-backed notification sink.
func NewNotificationSink() service.NotificationSink {
	return &notificationSink{}
}

// Deliver inserts the notifications inside the caller's transaction.
func (s *notificationSink) Deliver(ctx context.Context, txRepoFactory repository.RepositoryFactory, notifications []*entity.Notification) error {
	return txRepoFactory.NewNotificationRepository().CreateNotifications(ctx, notifications)
}
