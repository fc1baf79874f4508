package impl

import (
	"context"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
)

type locationService struct {
	locationRepo repository.LocationRepository
}

// NewLocationService creates a new location service instance
func NewLocationService(locationRepo repository.LocationRepository) usecase.LocationUsecase {
	return &locationService{locationRepo: locationRepo}
}

// CreateLocation stores a location. Two locations never share the same coordinates.
func (s *locationService) CreateLocation(ctx context.Context, input *usecase.CreateLocationInput) (*entity.Location, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	exists, err := s.locationRepo.CoordinatesExist(ctx, input.Latitude, input.Longitude)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check coordinates")
	}
	if exists {
		return nil, domainerrors.ErrDuplicateLocation
	}

	location := newLocation(input)
	if err := s.locationRepo.CreateLocation(ctx, location); err != nil {
		if errors.Is(err, repository.ErrDuplicateLocation) {
			return nil, domainerrors.ErrDuplicateLocation
		}

		return nil, errors.Wrap(err, "failed to create location")
	}

	return location, nil
}

func (s *locationService) GetLocation(ctx context.Context, id uint) (*entity.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return location, nil
}

func (s *locationService) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	locations, err := s.locationRepo.ListLocations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return locations, nil
}

func newLocation(input *usecase.CreateLocationInput) *entity.Location {
	return &entity.Location{
		Longitude:   input.Longitude,
		Latitude:    input.Latitude,
		Description: input.Description,
	}
}

// validateCoordinates enforces the open ranges (-90,90) and (-180,180).
func validateCoordinates(latitude, longitude float64) error {
	fields := make(map[string]string)
	if latitude <= -90 || latitude >= 90 {
		fields["latitude"] = "Latitude must be between -90 and 90."
	}
	if longitude <= -180 || longitude >= 180 {
		fields["longitude"] = "Longitude must be between -180 and 180."
	}
	if len(fields) > 0 {
		return domainerrors.NewFieldError(fields)
	}

	return nil
}
