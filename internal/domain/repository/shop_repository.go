package repository

import (
	"context"

	"zembil/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrShopNotFound is returned when a shop is not found.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository defines the persistence operations for shops.
type ShopRepository interface {
	// CreateShop persists a new shop.
	CreateShop(ctx context.Context, shop *entity.Shop) error

	// FindShopByID retrieves a shop with its category name and location.
	FindShopByID(ctx context.Context, id uint) (*entity.Shop, error)

	// ListShops returns all shops ordered by ID, each with its follower count.
	ListShops(ctx context.Context) ([]*entity.Shop, error)

	// ListShopsByOwner returns the shops owned by a user.
	ListShopsByOwner(ctx context.Context, userID uint) ([]*entity.Shop, error)

	// FindShopsByLocationIDs returns the shops bound to any of the given locations.
	FindShopsByLocationIDs(ctx context.Context, locationIDs []uint) ([]*entity.Shop, error)

	// SearchShops matches shop name and category name case-insensitively. Empty terms are ignored.
	SearchShops(ctx context.Context, name, category string) ([]*entity.Shop, error)

	// UpdateShop saves the mutable fields of a shop.
	UpdateShop(ctx context.Context, shop *entity.Shop) error

	// DeleteShop removes a shop.
	DeleteShop(ctx context.Context, id uint) error

	// CountShops returns the number of shops.
	CountShops(ctx context.Context) (int64, error)
}
