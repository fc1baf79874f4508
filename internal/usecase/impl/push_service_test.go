package impl

import (
	"context"
	"fmt"
	"testing"

	"zembil/internal/domain/entity"
	"zembil/internal/domain/service"
	mockRepo "zembil/internal/mocks/repository"
	mockSvc "zembil/internal/mocks/service"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushServiceFixtures struct {
	service    usecase.PushUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	pushSvc    *mockSvc.MockNotificationService
}

func createTestPushService(t *testing.T) pushServiceFixtures {
	f := pushServiceFixtures{
		deviceRepo: mockRepo.NewMockDeviceRepository(t),
		pushSvc:    mockSvc.NewMockNotificationService(t),
	}
	f.service = NewPushService(PushServiceParams{
		DeviceRepo: f.deviceRepo,
		PushSvc:    f.pushSvc,
		Logger:     testLogger(),
	})

	return f
}

func productEvent(followers ...uint) *service.ProductEvent {
	return &service.ProductEvent{
		ProductID:   42,
		ProductName: "Phone",
		ShopID:      3,
		ShopName:    "Abebe Electronics",
		FollowerIDs: followers,
	}
}

func devicesWithTokens(n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, n)
	for i := range n {
		devices = append(devices, &entity.UserDevice{ID: uint(i + 1), FCMToken: fmt.Sprintf("token-%d", i)})
	}

	return devices
}

func TestPushService_NotifyFollowers(t *testing.T) {
	f := createTestPushService(t)
	ctx := context.Background()

	f.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []uint{11, 12}).Return(devicesWithTokens(2), nil)
	f.pushSvc.EXPECT().
		SendMulticast(ctx, []string{"token-0", "token-1"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == "Abebe Electronics" &&
				msg.Body == "Abebe Electronics added new product Phone" &&
				msg.Data["product_id"] == "42" && msg.Data["shop_id"] == "3"
		})).
		Return(&service.MulticastResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"token-1"}}, nil)
	f.deviceRepo.EXPECT().DeactivateTokens(ctx, []string{"token-1"}).Return(nil)

	result, err := f.service.NotifyFollowers(ctx, productEvent(11, 12))
	require.NoError(t, err)
	assert.Equal(t, &usecase.PushResult{Devices: 2, SuccessCount: 1, FailureCount: 1, InvalidTokens: 1}, result)
}

func TestPushService_NotifyFollowers_NoFollowers(t *testing.T) {
	f := createTestPushService(t)

	result, err := f.service.NotifyFollowers(context.Background(), productEvent())
	require.NoError(t, err)
	assert.Equal(t, &usecase.PushResult{}, result)
}

func TestPushService_NotifyFollowers_NoDevices(t *testing.T) {
	f := createTestPushService(t)
	ctx := context.Background()

	f.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []uint{11}).Return([]*entity.UserDevice{}, nil)

	result, err := f.service.NotifyFollowers(ctx, productEvent(11))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Devices)
}

func TestPushService_NotifyFollowers_Batches(t *testing.T) {
	f := createTestPushService(t)
	ctx := context.Background()

	f.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []uint{11}).Return(devicesWithTokens(pushBatchSize+20), nil)
	f.pushSvc.EXPECT().
		SendMulticast(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == pushBatchSize }), mock.Anything).
		Return(&service.MulticastResult{SuccessCount: pushBatchSize}, nil).
		Once()
	f.pushSvc.EXPECT().
		SendMulticast(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 20 }), mock.Anything).
		Return(nil, errors.New("quota exceeded")).
		Once()

	result, err := f.service.NotifyFollowers(ctx, productEvent(11))
	require.NoError(t, err)
	assert.Equal(t, pushBatchSize, result.SuccessCount)
	assert.Equal(t, 20, result.FailureCount)
}

func TestPushService_NotifyFollowers_AllBatchesFail(t *testing.T) {
	f := createTestPushService(t)
	ctx := context.Background()

	f.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []uint{11}).Return(devicesWithTokens(3), nil)
	f.pushSvc.EXPECT().
		SendMulticast(ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("unavailable"))

	result, err := f.service.NotifyFollowers(ctx, productEvent(11))
	require.Error(t, err)
	assert.Equal(t, 3, result.FailureCount)
}

func TestPushService_NotifyFollowers_DeactivateFailureIsNotFatal(t *testing.T) {
	f := createTestPushService(t)
	ctx := context.Background()

	f.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []uint{11}).Return(devicesWithTokens(1), nil)
	f.pushSvc.EXPECT().
		SendMulticast(ctx, mock.Anything, mock.Anything).
		Return(&service.MulticastResult{FailureCount: 1, InvalidTokens: []string{"token-0"}}, nil)
	f.deviceRepo.EXPECT().DeactivateTokens(ctx, []string{"token-0"}).Return(errors.New("timeout"))

	result, err := f.service.NotifyFollowers(ctx, productEvent(11))
	require.NoError(t, err)
	assert.Equal(t, 1, result.InvalidTokens)
}
