package impl

import (
	"context"

	"zembil/internal/domain/entity"
	"zembil/internal/domain/repository"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{notificationRepo: notificationRepo}
}

// ListNotifications returns the notifications as they were before this read marked them seen.
func (s *notificationService) ListNotifications(ctx context.Context, userID uint) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.ListNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	if err := s.notificationRepo.MarkNotificationsSeen(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to mark notifications seen")
	}

	return notifications, nil
}

func (s *notificationService) ClearNotifications(ctx context.Context, userID uint) error {
	if err := s.notificationRepo.DeleteNotificationsByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete notifications")
	}

	return nil
}
