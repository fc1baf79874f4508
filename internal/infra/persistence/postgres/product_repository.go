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

const productRatingJoin = "JOIN (SELECT product_id, AVG(rating) AS avg_rating FROM reviews GROUP BY product_id) ratings ON ratings.product_id = products.id"

// ratedProducts keeps only products with at least one review.
func ratedProducts(db *gorm.DB) *gorm.DB {
	return db.Joins(productRatingJoin)
}

func allProducts(db *gorm.DB) *gorm.DB {
	return db
}

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// CreateProduct persists a new product.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Shop", "Category").Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProduct
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid shop or category reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

// FindProductByID retrieves a product by ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uint) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// ProductNameExists reports whether the shop lists a product with the name.
func (repo *productRepository) ProductNameExists(ctx context.Context, shopID uint, name string) (bool, error) {
	return existsOnPrimary(ctx, repo.db, &model.ProductModel{}, "shop_id = ? AND name = ?", shopID, name)
}

// ListProducts returns one page of products ordered by ID.
func (repo *productRepository) ListProducts(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error) {
	return repo.page(ctx, allProducts, func(db *gorm.DB) *gorm.DB {
		return db.Order("products.id ASC")
	}, offset, limit)
}

// ListLatestProducts returns one page of products, newest first.
func (repo *productRepository) ListLatestProducts(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error) {
	return repo.page(ctx, allProducts, func(db *gorm.DB) *gorm.DB {
		return db.Order("products.created_at DESC, products.id DESC")
	}, offset, limit)
}

// ListPopularProducts returns one page of reviewed products by average rating.
// Products without reviews are neither listed nor counted.
func (repo *productRepository) ListPopularProducts(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error) {
	return repo.page(ctx, ratedProducts, byRating, offset, limit)
}

func byRating(db *gorm.DB) *gorm.DB {
	return db.Select("products.*").Order("ratings.avg_rating DESC, products.id ASC")
}

// page counts and fetches the same filtered set so count matches the listed rows.
func (repo *productRepository) page(ctx context.Context, filter, order func(*gorm.DB) *gorm.DB, offset, limit int) ([]*entity.Product, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	if total == 0 || int64(offset) >= total {
		return []*entity.Product{}, total, nil
	}

	products, err := repo.find(repo.db.WithContext(ctx).Scopes(filter, order, paginate(offset, limit)))
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// ListProductsByShops returns the products of the given shops.
func (repo *productRepository) ListProductsByShops(ctx context.Context, shopIDs []uint) ([]*entity.Product, error) {
	if len(shopIDs) == 0 {
		return []*entity.Product{}, nil
	}

	return repo.find(repo.db.WithContext(ctx).
		Where("shop_id IN ?", shopIDs).
		Order("id ASC"))
}

// SearchProducts matches product and category names case-insensitively, ordered by product name.
func (repo *productRepository) SearchProducts(ctx context.Context, name, category string) ([]*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx).
		Select("products.*").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Scopes(ilike("products.name", name), ilike("categories.name", category)).
		Order("products.name ASC, products.id ASC"))
}

// FilterProducts returns the products within the price range in storage order.
func (repo *productRepository) FilterProducts(ctx context.Context, prices repository.PriceRange) ([]*entity.Product, error) {
	db := repo.db.WithContext(ctx)
	if prices.Min != nil {
		db = db.Where("price >= ?", *prices.Min)
	}
	if prices.Max != nil {
		db = db.Where("price <= ?", *prices.Max)
	}

	return repo.find(db)
}

func (repo *productRepository) find(db *gorm.DB) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := db.Preload("Category").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// UpdateProduct saves the mutable fields of a product.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":               product.Name,
			"brand":              product.Brand,
			"category_id":        product.CategoryID,
			"description":        product.Description,
			"price":              product.Price,
			"condition":          product.Condition,
			"image_path":         product.ImagePath,
			"delivery_available": product.DeliveryAvailable,
			"discount":           product.Discount,
			"stock":              product.Stock,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateProduct
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates a check constraint")
		}

		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes a product.
func (repo *productRepository) DeleteProduct(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// CountProducts returns the number of products.
func (repo *productRepository) CountProducts(ctx context.Context) (int64, error) {
	return countAll(ctx, repo.db, &model.ProductModel{})
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:                data.ID,
		Name:              data.Name,
		CreatedAt:         data.CreatedAt,
		Brand:             data.Brand,
		ShopID:            data.ShopID,
		CategoryID:        data.CategoryID,
		Description:       data.Description,
		Price:             data.Price,
		Condition:         data.Condition,
		ImagePath:         data.ImagePath,
		DeliveryAvailable: data.DeliveryAvailable,
		Discount:          data.Discount,
		Stock:             data.Stock,
	}
	if data.Category != nil {
		product.CategoryName = data.Category.Name
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                data.ID,
		Name:              data.Name,
		CreatedAt:         data.CreatedAt,
		Brand:             data.Brand,
		ShopID:            data.ShopID,
		CategoryID:        data.CategoryID,
		Description:       data.Description,
		Price:             data.Price,
		Condition:         data.Condition,
		ImagePath:         data.ImagePath,
		DeliveryAvailable: data.DeliveryAvailable,
		Discount:          data.Discount,
		Stock:             data.Stock,
	}
}
