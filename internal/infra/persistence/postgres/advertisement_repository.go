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

// advertisementRepository implements the repository.AdvertisementRepository interface.
type advertisementRepository struct {
	db *gorm.DB
}

// NewAdvertisementRepository is the constructor for advertisementRepository.
func NewAdvertisementRepository(db *gorm.DB) repository.AdvertisementRepository {
	return &advertisementRepository{db: db}
}

// CreateAdvertisement persists a new advertisement.
func (repo *advertisementRepository) CreateAdvertisement(ctx context.Context, ad *entity.Advertisement) error {
	adM := fromAdvertisementDomain(ad)

	if err := repo.db.WithContext(ctx).Omit("Shop").Create(adM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShopNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create advertisement")
	}

	ad.ID = adM.ID

	return nil
}

// FindAdvertisementByID retrieves an advertisement by ID.
func (repo *advertisementRepository) FindAdvertisementByID(ctx context.Context, id uint) (*entity.Advertisement, error) {
	var adM model.AdvertisementModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&adM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdvertisementNotFound
		}

		return nil, errors.Wrap(err, "failed to find advertisement by ID")
	}

	return toAdvertisementDomain(&adM), nil
}

// ListAdvertisements returns all advertisements ordered by ID.
func (repo *advertisementRepository) ListAdvertisements(ctx context.Context) ([]*entity.Advertisement, error) {
	var adModels []*model.AdvertisementModel

	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&adModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list advertisements")
	}

	ads := make([]*entity.Advertisement, 0, len(adModels))
	for _, adM := range adModels {
		ads = append(ads, toAdvertisementDomain(adM))
	}

	return ads, nil
}

// SetAdvertisementActive sets the active flag of an advertisement.
func (repo *advertisementRepository) SetAdvertisementActive(ctx context.Context, id uint, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdvertisementModel{}).
		Where("id = ?", id).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update advertisement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdvertisementNotFound
	}

	return nil
}

// DeleteAdvertisement removes an advertisement.
func (repo *advertisementRepository) DeleteAdvertisement(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AdvertisementModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete advertisement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdvertisementNotFound
	}

	return nil
}

// CountAdvertisements returns the number of advertisements.
func (repo *advertisementRepository) CountAdvertisements(ctx context.Context) (int64, error) {
	return countAll(ctx, repo.db, &model.AdvertisementModel{})
}

// --- Mapper Functions ---

func toAdvertisementDomain(data *model.AdvertisementModel) *entity.Advertisement {
	if data == nil {
		return nil
	}

	return &entity.Advertisement{
		ID:          data.ID,
		ShopID:      data.ShopID,
		StartDate:   entity.NewDate(data.StartDate),
		EndDate:     entity.NewDate(data.EndDate),
		Description: data.Description,
		Discount:    data.Discount,
		IsActive:    data.IsActive,
	}
}

func fromAdvertisementDomain(data *entity.Advertisement) *model.AdvertisementModel {
	if data == nil {
		return nil
	}

	return &model.AdvertisementModel{
		ID:          data.ID,
		ShopID:      data.ShopID,
		StartDate:   data.StartDate.Time,
		EndDate:     data.EndDate.Time,
		Description: data.Description,
		Discount:    data.Discount,
		IsActive:    data.IsActive,
	}
}
