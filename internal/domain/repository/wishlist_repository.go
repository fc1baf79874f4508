package repository

import (
	"context"

	"zembil/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrWishListItemNotFound is returned when a wishlist item is not found.
	ErrWishListItemNotFound = errors.New("wishlist item not found")
	// ErrDuplicateWishListItem is returned when the product is already in the user's wishlist.
	ErrDuplicateWishListItem = errors.New("wishlist item already exists")
)

// WishListRepository defines the persistence operations for wishlist (cart) items.
type WishListRepository interface {
	// CreateItem persists a new wishlist item.
	CreateItem(ctx context.Context, item *entity.WishListItem) error

	// FindItemByID retrieves a wishlist item with its product.
	FindItemByID(ctx context.Context, id uint) (*entity.WishListItem, error)

	// ItemExists reports whether the product is in the user's wishlist. It reads from the primary.
	ItemExists(ctx context.Context, userID, productID uint) (bool, error)

	// ListItemsByUser returns the user's wishlist items with their products.
	ListItemsByUser(ctx context.Context, userID uint) ([]*entity.WishListItem, error)

	// DeleteItem removes a wishlist item.
	DeleteItem(ctx context.Context, id uint) error
}
