package usecase

import (
	"context"

	"zembil/internal/domain/entity"
)

// DeviceInfo represents device information for registration.
type DeviceInfo struct {
	FCMToken string `json:"fcmToken" validate:"required"`
	DeviceID string `json:"deviceId" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// UpdateFCMTokenInput replaces a device's push token.
type UpdateFCMTokenInput struct {
	FCMToken string `json:"fcmToken" validate:"required"`
}

// DeviceUsecase defines the interface for device management use cases.
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of a known one.
	RegisterDevice(ctx context.Context, userID uint, deviceInfo *DeviceInfo) (*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, userID, deviceID uint, fcmToken string) error
	GetUserDevices(ctx context.Context, userID uint) ([]*entity.UserDevice, error)
	DeleteDevice(ctx context.Context, userID, deviceID uint) error
}
