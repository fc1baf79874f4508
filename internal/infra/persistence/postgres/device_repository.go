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

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := &model.UserDeviceModel{
		UserID:   device.UserID,
		FCMToken: device.FCMToken,
		DeviceID: device.DeviceID,
		Platform: device.Platform,
		IsActive: device.IsActive,
	}

	err := repo.db.WithContext(ctx).Create(deviceM).Error
	switch {
	case err == nil:
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateDevice
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrUserNotFound.WrapMessage("device owner does not exist")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to register device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uint) (*entity.UserDevice, error) {
	return repo.first(ctx, "id = ?", id)
}

func (repo *deviceRepository) FindDeviceByClientID(ctx context.Context, userID uint, deviceID string) (*entity.UserDevice, error) {
	return repo.first(ctx, "user_id = ? AND device_id = ?", userID, deviceID)
}

func (repo *deviceRepository) first(ctx context.Context, query string, args ...any) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	if err := repo.db.WithContext(ctx).Where(query, args...).First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return toDeviceDomain(&deviceM), nil
}

func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uint) ([]*entity.UserDevice, error) {
	return repo.list(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	})
}

func (repo *deviceRepository) FindActiveDevicesByUsers(ctx context.Context, userIDs []uint) ([]*entity.UserDevice, error) {
	if len(userIDs) == 0 {
		return []*entity.UserDevice{}, nil
	}

	return repo.list(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id IN ? AND is_active", userIDs)
	})
}

func (repo *deviceRepository) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).Scopes(scope).Order("id ASC").Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.UserDevice, len(deviceModels))
	for i, deviceM := range deviceModels {
		devices[i] = toDeviceDomain(deviceM)
	}

	return devices, nil
}

func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, id uint, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"fcm_token": fcmToken, "is_active": true})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(result.Error, "failed to update device token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) DeactivateTokens(ctx context.Context, fcmTokens []string) error {
	if len(fcmTokens) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ? AND is_active", fcmTokens).
		Update("is_active", false).Error

	return errors.Wrap(err, "failed to deactivate device tokens")
}

func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserDeviceModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
