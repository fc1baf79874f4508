package impl

import (
	"context"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or updates an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uint, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByClientID(ctx, userID, deviceInfo.DeviceID)
	switch {
	case err == nil:
		return s.refreshToken(ctx, device, deviceInfo.FCMToken)
	case !errors.Is(err, repository.ErrDeviceNotFound):
		return nil, errors.Wrap(err, "failed to find device by client ID")
	}

	device = &entity.UserDevice{
		UserID:   userID,
		FCMToken: deviceInfo.FCMToken,
		DeviceID: deviceInfo.DeviceID,
		Platform: deviceInfo.Platform,
		IsActive: true,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if !errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, errors.Wrap(err, "failed to create device")
		}

		// Registered concurrently by another request.
		existing, findErr := s.deviceRepo.FindDeviceByClientID(ctx, userID, deviceInfo.DeviceID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to find device by client ID")
		}

		return s.refreshToken(ctx, existing, deviceInfo.FCMToken)
	}

	return device, nil
}

func (s *deviceService) refreshToken(ctx context.Context, device *entity.UserDevice, fcmToken string) (*entity.UserDevice, error) {
	if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, fcmToken); err != nil {
		return nil, errors.Wrap(err, "failed to update FCM token")
	}

	updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return updatedDevice, nil
}

// findOwnedDevice fetches a device and verifies ownership
func (s *deviceService) findOwnedDevice(ctx context.Context, userID, deviceID uint) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("device belongs to another user")
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID, deviceID uint, fcmToken string) error {
	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetUserDevices retrieves all devices of a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uint) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return devices, nil
}

// DeleteDevice removes a device of the caller
func (s *deviceService) DeleteDevice(ctx context.Context, userID, deviceID uint) error {
	if _, err := s.findOwnedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
