package impl

import (
	"context"
	"testing"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	mockRepo "zembil/internal/mocks/repository"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByClientID(ctx, uint(9), "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, 9, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, uint(9), device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	existingDevice := &entity.UserDevice{
		ID:       4,
		UserID:   9,
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: "ios",
		IsActive: true,
	}
	updatedDevice := *existingDevice
	updatedDevice.FCMToken = "new-fcm-token"

	fx.deviceRepo.EXPECT().
		FindDeviceByClientID(ctx, uint(9), "device-123").
		Return(existingDevice, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, uint(4), "new-fcm-token").
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, uint(4)).
		Return(&updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, 9, &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_ConcurrentInsert(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	existing := &entity.UserDevice{ID: 4, UserID: 9, DeviceID: "device-123"}

	fx.deviceRepo.EXPECT().
		FindDeviceByClientID(ctx, uint(9), "device-123").
		Return(nil, repository.ErrDeviceNotFound).
		Once()
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.Anything).
		Return(repository.ErrDuplicateDevice)
	fx.deviceRepo.EXPECT().
		FindDeviceByClientID(ctx, uint(9), "device-123").
		Return(existing, nil).
		Once()
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, uint(4), "tok").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, uint(4)).Return(existing, nil)

	device, err := fx.service.RegisterDevice(ctx, 9, &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "device-123", Platform: "android"})
	require.NoError(t, err)
	assert.Equal(t, uint(4), device.ID)
}

func TestDeviceService_RegisterDevice_LookupError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	fx.deviceRepo.EXPECT().
		FindDeviceByClientID(ctx, uint(9), "device-123").
		Return(nil, errors.New("database connection failed"))

	device, err := fx.service.RegisterDevice(ctx, 9, &usecase.DeviceInfo{DeviceID: "device-123"})
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "database connection failed")
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, uint(4)).Return(&entity.UserDevice{ID: 4, UserID: 9}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, uint(4), "fresh").Return(nil)

		require.NoError(t, fx.service.UpdateFCMToken(ctx, 9, 4, "fresh"))
	})

	t.Run("another user's device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, uint(4)).Return(&entity.UserDevice{ID: 4, UserID: 1}, nil)

		assert.ErrorIs(t, fx.service.UpdateFCMToken(ctx, 9, 4, "fresh"), domainerrors.ErrForbidden)
	})

	t.Run("unknown device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, uint(4)).Return(nil, repository.ErrDeviceNotFound)

		assert.ErrorIs(t, fx.service.UpdateFCMToken(ctx, 9, 4, "fresh"), domainerrors.ErrDeviceNotFound)
	})
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	devices := []*entity.UserDevice{{ID: 1, UserID: 9}, {ID: 2, UserID: 9}}
	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, uint(9)).Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, 9)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeviceService_DeleteDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, uint(4)).Return(&entity.UserDevice{ID: 4, UserID: 9}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, uint(4)).Return(nil)

	require.NoError(t, fx.service.DeleteDevice(ctx, 9, 4))
}
