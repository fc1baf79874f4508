package repository

import (
	"context"

	"zembil/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAdvertisementNotFound is returned when an advertisement is not found.
var ErrAdvertisementNotFound = errors.New("advertisement not found")

// AdvertisementRepository defines the persistence operations for advertisements.
type AdvertisementRepository interface {
	// CreateAdvertisement persists a new advertisement.
	CreateAdvertisement(ctx context.Context, ad *entity.Advertisement) error

	// FindAdvertisementByID retrieves an advertisement by ID.
	FindAdvertisementByID(ctx context.Context, id uint) (*entity.Advertisement, error)

	// ListAdvertisements returns all advertisements ordered by ID.
	ListAdvertisements(ctx context.Context) ([]*entity.Advertisement, error)

	// SetAdvertisementActive sets the active flag of an advertisement.
	SetAdvertisementActive(ctx context.Context, id uint, active bool) error

	// DeleteAdvertisement removes an advertisement.
	DeleteAdvertisement(ctx context.Context, id uint) error

	// CountAdvertisements returns the number of advertisements.
	CountAdvertisements(ctx context.Context) (int64, error)
}
