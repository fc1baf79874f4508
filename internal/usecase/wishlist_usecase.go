package usecase

import (
	"context"

	"zembil/internal/domain/entity"
)

// AddWishListItemInput adds a product to the caller's wishlist.
type AddWishListItemInput struct {
	ProductID uint `json:"productId" validate:"required"`
}

// WishListUsecase manages the per-user wishlist (cart).
type WishListUsecase interface {
	AddItem(ctx context.Context, userID uint, input *AddWishListItemInput) (*entity.WishListItem, error)
	ListItems(ctx context.Context, userID uint) ([]*entity.WishListItem, error)
	GetItem(ctx context.Context, id uint) (*entity.WishListItem, error)
	DeleteItem(ctx context.Context, userID, id uint) error
}
