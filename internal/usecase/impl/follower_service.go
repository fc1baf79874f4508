package impl

import (
	"context"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
)

type followerService struct {
	followerRepo repository.FollowerRepository
	shopRepo     repository.ShopRepository
}

// NewFollowerService creates a new follower service instance
func NewFollowerService(followerRepo repository.FollowerRepository, shopRepo repository.ShopRepository) usecase.FollowerUsecase {
	return &followerService{
		followerRepo: followerRepo,
		shopRepo:     shopRepo,
	}
}

func (s *followerService) ensureShop(ctx context.Context, shopID uint) error {
	if _, err := s.shopRepo.FindShopByID(ctx, shopID); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return domainerrors.ErrShopNotFound
		}

		return errors.Wrap(err, "failed to find shop")
	}

	return nil
}

// FollowShop subscribes the user to the shop. Following twice is a conflict.
func (s *followerService) FollowShop(ctx context.Context, userID, shopID uint) (*entity.ShopFollower, error) {
	if err := s.ensureShop(ctx, shopID); err != nil {
		return nil, err
	}

	following, err := s.followerRepo.IsFollowing(ctx, userID, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check follow relation")
	}
	if following {
		return nil, domainerrors.ErrAlreadyFollowing
	}

	follower := &entity.ShopFollower{UserID: userID, ShopID: shopID}
	if err := s.followerRepo.CreateFollower(ctx, follower); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyFollowing):
			return nil, domainerrors.ErrAlreadyFollowing
		case errors.Is(err, repository.ErrShopNotFound):
			return nil, domainerrors.ErrShopNotFound
		default:
			return nil, errors.Wrap(err, "failed to follow shop")
		}
	}

	return follower, nil
}

// UnfollowShop removes the follow relation.
func (s *followerService) UnfollowShop(ctx context.Context, userID, shopID uint) error {
	if err := s.ensureShop(ctx, shopID); err != nil {
		return err
	}

	if err := s.followerRepo.DeleteFollower(ctx, userID, shopID); err != nil {
		if errors.Is(err, repository.ErrFollowerNotFound) {
			return domainerrors.ErrFollowerNotFound
		}

		return errors.Wrap(err, "failed to unfollow shop")
	}

	return nil
}

// GetShopFollowers returns the follower count and ids of a shop.
func (s *followerService) GetShopFollowers(ctx context.Context, shopID uint) (*entity.ShopFollowers, error) {
	if err := s.ensureShop(ctx, shopID); err != nil {
		return nil, err
	}

	userIDs, err := s.followerRepo.ListFollowerIDs(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list followers")
	}

	return &entity.ShopFollowers{
		ShopID:    shopID,
		Followers: int64(len(userIDs)),
		UserIDs:   userIDs,
	}, nil
}
