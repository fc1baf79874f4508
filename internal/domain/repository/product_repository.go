package repository

import (
	"context"

	"zembil/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct is returned when the shop already lists a product with the same name.
	ErrDuplicateProduct = errors.New("product already exists")
)

// PriceRange bounds a product filter. Nil bounds are open.
type PriceRange struct {
	Min *float64
	Max *float64
}

// ProductRepository defines the persistence operations for products.
type ProductRepository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by ID.
	FindProductByID(ctx context.Context, id uint) (*entity.Product, error)

	// ProductNameExists reports whether the shop lists a product with the name. It reads from the primary.
	ProductNameExists(ctx context.Context, shopID uint, name string) (bool, error)

	// ListProducts returns one page of products ordered by ID and the total count.
	ListProducts(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error)

	// ListLatestProducts returns one page of products, newest first, and the total count.
	ListLatestProducts(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error)

	// ListPopularProducts returns one page of products by average rating, best first, and the total count.
	ListPopularProducts(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error)

	// ListProductsByShops returns the products of the given shops ordered by ID.
	ListProductsByShops(ctx context.Context, shopIDs []uint) ([]*entity.Product, error)

	// SearchProducts matches product name and category name case-insensitively. Empty terms are ignored.
	SearchProducts(ctx context.Context, name, category string) ([]*entity.Product, error)

	// FilterProducts returns the products whose price lies within the range.
	FilterProducts(ctx context.Context, prices PriceRange) ([]*entity.Product, error)

	// UpdateProduct saves the mutable fields of a product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id uint) error

	// CountProducts returns the number of products.
	CountProducts(ctx context.Context) (int64, error)
}
