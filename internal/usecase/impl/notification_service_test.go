package impl

import (
	"context"
	"testing"

	"zembil/internal/domain/entity"
	mockRepo "zembil/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListNotifications_MarksSeenAfterRead(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(repo)
	unread := []*entity.Notification{{ID: 1, UserID: 9, Seen: false}}

	listCall := repo.EXPECT().ListNotificationsByUser(ctx, uint(9)).Return(unread, nil).Call
	repo.EXPECT().MarkNotificationsSeen(ctx, uint(9)).Return(nil).NotBefore(listCall)

	notifications, err := svc.ListNotifications(ctx, 9)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].Seen)
}

func TestNotificationService_ListNotifications_MarkFailure(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(repo)

	repo.EXPECT().ListNotificationsByUser(ctx, uint(9)).Return([]*entity.Notification{}, nil)
	repo.EXPECT().MarkNotificationsSeen(ctx, uint(9)).Return(errors.New("deadlock"))

	_, err := svc.ListNotifications(ctx, 9)
	assert.Error(t, err)
}

func TestNotificationService_ClearNotifications(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(repo)

	repo.EXPECT().DeleteNotificationsByUser(ctx, uint(9)).Return(nil)

	require.NoError(t, svc.ClearNotifications(ctx, 9))
}
