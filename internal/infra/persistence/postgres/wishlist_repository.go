package postgres

import (
	"context"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type wishListRepository struct {
	db *gorm.DB
}

// NewWishListRepository is the constructor for wishListRepository.
func NewWishListRepository(db *gorm.DB) repository.WishListRepository {
	return &wishListRepository{db: db}
}

func (repo *wishListRepository) CreateItem(ctx context.Context, item *entity.WishListItem) error {
	itemM := &model.WishListItemModel{
		UserID:    item.UserID,
		ProductID: item.ProductID,
	}

	if err := repo.db.WithContext(ctx).Omit("Product").Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWishListItem
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add wishlist item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

func (repo *wishListRepository) FindItemByID(ctx context.Context, id uint) (*entity.WishListItem, error) {
	var itemM model.WishListItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishListItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find wishlist item by ID")
	}

	return toWishListItemDomain(&itemM), nil
}

func (repo *wishListRepository) ItemExists(ctx context.Context, userID, productID uint) (bool, error) {
	return existsOnPrimary(ctx, repo.db, &model.WishListItemModel{},
		"user_id = ? AND product_id = ?", userID, productID)
}

func (repo *wishListRepository) ListItemsByUser(ctx context.Context, userID uint) ([]*entity.WishListItem, error) {
	var itemModels []*model.WishListItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist items")
	}

	items := make([]*entity.WishListItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toWishListItemDomain(itemM))
	}

	return items, nil
}

func (repo *wishListRepository) DeleteItem(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.WishListItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete wishlist item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWishListItemNotFound
	}

	return nil
}

func toWishListItemDomain(data *model.WishListItemModel) *entity.WishListItem {
	if data == nil {
		return nil
	}

	return &entity.WishListItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
		Product:   toProductDomain(data.Product),
	}
}
