package postgres

import (
	"context"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// CreateLocation persists a new location.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLocation
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.ID = locationM.ID

	return nil
}

// FindLocationByID retrieves a location by ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uint) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// CoordinatesExist reports whether a location with the coordinates exists.
func (repo *locationRepository) CoordinatesExist(ctx context.Context, latitude, longitude float64) (bool, error) {
	return existsOnPrimary(ctx, repo.db, &model.LocationModel{},
		"latitude = ? AND longitude = ?", latitude, longitude)
}

// ListLocations returns all locations ordered by ID.
func (repo *locationRepository) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	return repo.find(repo.db.WithContext(ctx))
}

// FindLocationsInBound returns the locations inside the bounding box.
func (repo *locationRepository) FindLocationsInBound(ctx context.Context, bound orb.Bound) ([]*entity.Location, error) {
	return repo.find(repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()))
}

func (repo *locationRepository) find(db *gorm.DB) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := db.Order("id ASC").Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// DeleteLocation removes a location.
func (repo *locationRepository) DeleteLocation(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LocationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:          data.ID,
		Longitude:   data.Longitude,
		Latitude:    data.Latitude,
		Description: data.Description,
	}
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:          data.ID,
		Longitude:   data.Longitude,
		Latitude:    data.Latitude,
		Description: data.Description,
	}
}
