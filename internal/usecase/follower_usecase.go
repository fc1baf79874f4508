package usecase

import (
	"context"

	"zembil/internal/domain/entity"
)

// FollowerUsecase manages shop follow relations.
type FollowerUsecase interface {
	FollowShop(ctx context.Context, userID, shopID uint) (*entity.ShopFollower, error)
	UnfollowShop(ctx context.Context, userID, shopID uint) error
	GetShopFollowers(ctx context.Context, shopID uint) (*entity.ShopFollowers, error)
}
