package impl

import (
	"context"
	"testing"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	mockRepo "zembil/internal/mocks/repository"
	"zembil/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWishListService_AddItem(t *testing.T) {
	ctx := context.Background()
	product := &entity.Product{ID: 5, Name: "Lamp"}

	t.Run("adds with product", func(t *testing.T) {
		wishListRepo := mockRepo.NewMockWishListRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		svc := NewWishListService(wishListRepo, productRepo)

		productRepo.EXPECT().FindProductByID(ctx, uint(5)).Return(product, nil)
		wishListRepo.EXPECT().ItemExists(ctx, uint(9), uint(5)).Return(false, nil)
		wishListRepo.EXPECT().CreateItem(ctx, mock.AnythingOfType("*entity.WishListItem")).Return(nil)

		item, err := svc.AddItem(ctx, 9, &usecase.AddWishListItemInput{ProductID: 5})
		require.NoError(t, err)
		assert.Equal(t, uint(9), item.UserID)
		assert.Equal(t, product, item.Product)
	})

	t.Run("already saved", func(t *testing.T) {
		wishListRepo := mockRepo.NewMockWishListRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		svc := NewWishListService(wishListRepo, productRepo)

		productRepo.EXPECT().FindProductByID(ctx, uint(5)).Return(product, nil)
		wishListRepo.EXPECT().ItemExists(ctx, uint(9), uint(5)).Return(true, nil)

		_, err := svc.AddItem(ctx, 9, &usecase.AddWishListItemInput{ProductID: 5})
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateWishListItem)
	})

	t.Run("unknown product", func(t *testing.T) {
		wishListRepo := mockRepo.NewMockWishListRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		svc := NewWishListService(wishListRepo, productRepo)

		productRepo.EXPECT().FindProductByID(ctx, uint(5)).Return(nil, repository.ErrProductNotFound)

		_, err := svc.AddItem(ctx, 9, &usecase.AddWishListItemInput{ProductID: 5})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestWishListService_DeleteItem(t *testing.T) {
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		wishListRepo := mockRepo.NewMockWishListRepository(t)
		svc := NewWishListService(wishListRepo, mockRepo.NewMockProductRepository(t))

		wishListRepo.EXPECT().FindItemByID(ctx, uint(2)).Return(&entity.WishListItem{ID: 2, UserID: 9}, nil)
		wishListRepo.EXPECT().DeleteItem(ctx, uint(2)).Return(nil)

		require.NoError(t, svc.DeleteItem(ctx, 9, 2))
	})

	t.Run("someone else's item", func(t *testing.T) {
		wishListRepo := mockRepo.NewMockWishListRepository(t)
		svc := NewWishListService(wishListRepo, mockRepo.NewMockProductRepository(t))

		wishListRepo.EXPECT().FindItemByID(ctx, uint(2)).Return(&entity.WishListItem{ID: 2, UserID: 1}, nil)

		assert.ErrorIs(t, svc.DeleteItem(ctx, 9, 2), domainerrors.ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		wishListRepo := mockRepo.NewMockWishListRepository(t)
		svc := NewWishListService(wishListRepo, mockRepo.NewMockProductRepository(t))

		wishListRepo.EXPECT().FindItemByID(ctx, uint(2)).Return(nil, repository.ErrWishListItemNotFound)

		assert.ErrorIs(t, svc.DeleteItem(ctx, 9, 2), domainerrors.ErrWishListItemNotFound)
	})
}
