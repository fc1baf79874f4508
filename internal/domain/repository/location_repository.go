package repository

import (
	"context"

	"zembil/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

var (
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")
	// ErrDuplicateLocation is returned when a location with the same coordinates exists.
	ErrDuplicateLocation = errors.New("location already exists")
)

// LocationRepository defines the persistence operations for locations.
type LocationRepository interface {
	// CreateLocation persists a new location.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// FindLocationByID retrieves a location by ID.
	FindLocationByID(ctx context.Context, id uint) (*entity.Location, error)

	// CoordinatesExist reports whether a location with exactly these coordinates exists.
	CoordinatesExist(ctx context.Context, latitude, longitude float64) (bool, error)

	// ListLocations returns all locations ordered by ID.
	ListLocations(ctx context.Context) ([]*entity.Location, error)

	// FindLocationsInBound returns the locations inside the given bounding box.
	FindLocationsInBound(ctx context.Context, bound orb.Bound) ([]*entity.Location, error)

	// DeleteLocation removes a location.
	DeleteLocation(ctx context.Context, id uint) error
}
