package repository

import (
	"context"

	"zembil/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores the push targets of users. A device is identified by the
// client's own device id, unique per user; its FCM token is unique across users.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.UserDevice) error
	FindDeviceByID(ctx context.Context, id uint) (*entity.UserDevice, error)
	FindDeviceByClientID(ctx context.Context, userID uint, deviceID string) (*entity.UserDevice, error)
	// FindDevicesByUser includes inactive devices.
	FindDevicesByUser(ctx context.Context, userID uint) ([]*entity.UserDevice, error)
	FindActiveDevicesByUsers(ctx context.Context, userIDs []uint) ([]*entity.UserDevice, error)
	// UpdateFCMToken replaces the token and reactivates the device.
	UpdateFCMToken(ctx context.Context, id uint, fcmToken string) error
	// DeactivateTokens stops pushes to every device holding one of the tokens.
	DeactivateTokens(ctx context.Context, fcmTokens []string) error
	DeleteDevice(ctx context.Context, id uint) error
}
