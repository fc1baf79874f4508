package impl

import (
	"context"
	"testing"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	mockRepo "zembil/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFollowerService_FollowShop(t *testing.T) {
	ctx := context.Background()

	t.Run("follows", func(t *testing.T) {
		followerRepo := mockRepo.NewMockFollowerRepository(t)
		shopRepo := mockRepo.NewMockShopRepository(t)
		svc := NewFollowerService(followerRepo, shopRepo)

		shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3}, nil)
		followerRepo.EXPECT().IsFollowing(ctx, uint(9), uint(3)).Return(false, nil)
		followerRepo.EXPECT().
			CreateFollower(ctx, mock.MatchedBy(func(f *entity.ShopFollower) bool { return f.UserID == 9 && f.ShopID == 3 })).
			Return(nil)

		follower, err := svc.FollowShop(ctx, 9, 3)
		require.NoError(t, err)
		assert.Equal(t, uint(3), follower.ShopID)
	})

	t.Run("already following", func(t *testing.T) {
		followerRepo := mockRepo.NewMockFollowerRepository(t)
		shopRepo := mockRepo.NewMockShopRepository(t)
		svc := NewFollowerService(followerRepo, shopRepo)

		shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3}, nil)
		followerRepo.EXPECT().IsFollowing(ctx, uint(9), uint(3)).Return(true, nil)

		_, err := svc.FollowShop(ctx, 9, 3)
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyFollowing)
	})

	t.Run("unknown shop", func(t *testing.T) {
		followerRepo := mockRepo.NewMockFollowerRepository(t)
		shopRepo := mockRepo.NewMockShopRepository(t)
		svc := NewFollowerService(followerRepo, shopRepo)

		shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(nil, repository.ErrShopNotFound)

		_, err := svc.FollowShop(ctx, 9, 3)
		assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
	})
}

func TestFollowerService_UnfollowShop_NotFollowing(t *testing.T) {
	ctx := context.Background()
	followerRepo := mockRepo.NewMockFollowerRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	svc := NewFollowerService(followerRepo, shopRepo)

	shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3}, nil)
	followerRepo.EXPECT().DeleteFollower(ctx, uint(9), uint(3)).Return(repository.ErrFollowerNotFound)

	err := svc.UnfollowShop(ctx, 9, 3)
	assert.ErrorIs(t, err, domainerrors.ErrFollowerNotFound)
}

func TestFollowerService_GetShopFollowers(t *testing.T) {
	ctx := context.Background()
	followerRepo := mockRepo.NewMockFollowerRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	svc := NewFollowerService(followerRepo, shopRepo)

	shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3}, nil)
	followerRepo.EXPECT().ListFollowerIDs(ctx, uint(3)).Return([]uint{4, 5}, nil)

	followers, err := svc.GetShopFollowers(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, &entity.ShopFollowers{ShopID: 3, Followers: 2, UserIDs: []uint{4, 5}}, followers)
}
