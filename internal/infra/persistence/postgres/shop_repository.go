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

const shopFollowerCountColumn = "(SELECT COUNT(*) FROM shop_followers WHERE shop_followers.shop_id = shops.id) AS follower_count"

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// CreateShop persists a new shop.
func (repo *shopRepository) CreateShop(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Omit("Category", "Location").Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLocation
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category or location reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt

	return nil
}

// FindShopByID retrieves a shop with its category and location.
func (repo *shopRepository) FindShopByID(ctx context.Context, id uint) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Location").
		Where("id = ?", id).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(&shopM), nil
}

// ListShops returns all shops with their follower counts.
func (repo *shopRepository) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	return repo.find(repo.db.WithContext(ctx).
		Select("shops.*, "+shopFollowerCountColumn).
		Order("shops.id ASC"))
}

// ListShopsByOwner returns the shops owned by a user.
func (repo *shopRepository) ListShopsByOwner(ctx context.Context, userID uint) ([]*entity.Shop, error) {
	return repo.find(repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC"))
}

// FindShopsByLocationIDs returns the shops bound to any of the locations.
func (repo *shopRepository) FindShopsByLocationIDs(ctx context.Context, locationIDs []uint) ([]*entity.Shop, error) {
	if len(locationIDs) == 0 {
		return []*entity.Shop{}, nil
	}

	return repo.find(repo.db.WithContext(ctx).
		Preload("Location").
		Where("location_id IN ?", locationIDs).
		Order("id ASC"))
}

// SearchShops matches shop and category names case-insensitively, ordered by shop name.
func (repo *shopRepository) SearchShops(ctx context.Context, name, category string) ([]*entity.Shop, error) {
	return repo.find(repo.db.WithContext(ctx).
		Select("shops.*").
		Joins("LEFT JOIN categories ON categories.id = shops.category_id").
		Scopes(ilike("shops.name", name), ilike("categories.name", category)).
		Order("shops.name ASC, shops.id ASC"))
}

func (repo *shopRepository) find(db *gorm.DB) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel

	if err := db.Preload("Category").Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shops")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// UpdateShop saves the mutable fields of a shop.
func (repo *shopRepository) UpdateShop(ctx context.Context, shop *entity.Shop) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", shop.ID).
		Updates(map[string]any{
			"name":          shop.Name,
			"category_id":   shop.CategoryID,
			"image_path":    shop.ImagePath,
			"building_name": shop.BuildingName,
			"phone_number":  shop.PhoneNumber,
			"phone_number2": shop.PhoneNumber2,
			"description":   shop.Description,
			"is_active":     shop.IsActive,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
		}

		return errors.Wrap(result.Error, "failed to update shop")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// DeleteShop removes a shop. Dependent products, followers and advertisements cascade.
func (repo *shopRepository) DeleteShop(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShopModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete shop")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// CountShops returns the number of shops.
func (repo *shopRepository) CountShops(ctx context.Context) (int64, error) {
	return countAll(ctx, repo.db, &model.ShopModel{})
}

// --- Mapper Functions ---

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	shop := &entity.Shop{
		ID:           data.ID,
		Name:         data.Name,
		UserID:       data.UserID,
		CategoryID:   data.CategoryID,
		LocationID:   data.LocationID,
		ImagePath:    data.ImagePath,
		BuildingName: data.BuildingName,
		PhoneNumber:  data.PhoneNumber,
		PhoneNumber2: data.PhoneNumber2,
		Description:  data.Description,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		Location:     toLocationDomain(data.Location),
		Followers:    data.FollowerCount,
	}
	if data.Category != nil {
		shop.CategoryName = data.Category.Name
	}

	return shop
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:           data.ID,
		Name:         data.Name,
		UserID:       data.UserID,
		CategoryID:   data.CategoryID,
		LocationID:   data.LocationID,
		ImagePath:    data.ImagePath,
		BuildingName: data.BuildingName,
		PhoneNumber:  data.PhoneNumber,
		PhoneNumber2: data.PhoneNumber2,
		Description:  data.Description,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
	}
}
