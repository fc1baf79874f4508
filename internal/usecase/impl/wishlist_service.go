package impl

import (
	"context"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
)

type wishListService struct {
	wishListRepo repository.WishListRepository
	productRepo  repository.ProductRepository
}

// NewWishListService creates a new wishlist service instance
func NewWishListService(wishListRepo repository.WishListRepository, productRepo repository.ProductRepository) usecase.WishListUsecase {
	return &wishListService{
		wishListRepo: wishListRepo,
		productRepo:  productRepo,
	}
}

func (s *wishListService) AddItem(ctx context.Context, userID uint, input *usecase.AddWishListItemInput) (*entity.WishListItem, error) {
	product, err := s.productRepo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	exists, err := s.wishListRepo.ItemExists(ctx, userID, input.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check wishlist")
	}
	if exists {
		return nil, domainerrors.ErrDuplicateWishListItem
	}

	item := &entity.WishListItem{UserID: userID, ProductID: input.ProductID}
	if err := s.wishListRepo.CreateItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateWishListItem) {
			return nil, domainerrors.ErrDuplicateWishListItem
		}

		return nil, errors.Wrap(err, "failed to add wishlist item")
	}
	item.Product = product

	return item, nil
}

func (s *wishListService) ListItems(ctx context.Context, userID uint) ([]*entity.WishListItem, error) {
	items, err := s.wishListRepo.ListItemsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return items, nil
}

func (s *wishListService) GetItem(ctx context.Context, id uint) (*entity.WishListItem, error) {
	item, err := s.wishListRepo.FindItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWishListItemNotFound) {
			return nil, domainerrors.ErrWishListItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find wishlist item")
	}

	return item, nil
}

// DeleteItem removes an item from the caller's own wishlist.
func (s *wishListService) DeleteItem(ctx context.Context, userID, id uint) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}

	if item.UserID != userID {
		return domainerrors.ErrForbidden.WrapMessage("wishlist item belongs to another user")
	}

	if err := s.wishListRepo.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, repository.ErrWishListItemNotFound) {
			return domainerrors.ErrWishListItemNotFound
		}

		return errors.Wrap(err, "failed to delete wishlist item")
	}

	return nil
}
