package postgres

import (
	"context"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const notificationBatchSize = 500

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateNotifications inserts the notifications in batches.
func (repo *notificationRepository) CreateNotifications(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		notificationModels = append(notificationModels, &model.NotificationModel{
			UserID:  notification.UserID,
			Message: notification.Message,
			Type:    notification.Type,
			Seen:    notification.Seen,
		})
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(notificationModels, notificationBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notifications")
	}

	for i, notificationM := range notificationModels {
		notifications[i].ID = notificationM.ID
		notifications[i].CreatedAt = notificationM.CreatedAt
	}

	return nil
}

// ListNotificationsByUser returns the user's notifications, newest first.
func (repo *notificationRepository) ListNotificationsByUser(ctx context.Context, userID uint) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkNotificationsSeen flags the user's unseen notifications as seen.
func (repo *notificationRepository) MarkNotificationsSeen(ctx context.Context, userID uint) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND seen = ?", userID, false).
		Update("seen", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark notifications seen")
	}

	return nil
}

// DeleteNotificationsByUser removes the user's notifications.
func (repo *notificationRepository) DeleteNotificationsByUser(ctx context.Context, userID uint) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.NotificationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete notifications")
	}

	return nil
}

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		Message:   data.Message,
		Type:      data.Type,
		Seen:      data.Seen,
		CreatedAt: data.CreatedAt,
	}
}
