package usecase

import (
	"context"

	"zembil/internal/domain/entity"
	"zembil/internal/usecase/pagination"
)

// Trending orderings.
const (
	TrendingLatest  = "latest"
	TrendingPopular = "popular"
)

// CreateProductInput defines a new product listing.
type CreateProductInput struct {
	ShopID            uint    `json:"shopId" validate:"required"`
	CategoryID        *uint   `json:"categoryId"`
	Name              string  `json:"productName" validate:"required,max=200"`
	Brand             string  `json:"brand" validate:"max=100"`
	Description       string  `json:"description" validate:"required,min=5"`
	Price             float64 `json:"price" validate:"gt=0"`
	Condition         string  `json:"condition" validate:"max=50"`
	ImagePath         string  `json:"imageUrl" validate:"omitempty,imageurl"`
	DeliveryAvailable bool    `json:"deliveryAvailable"`
	Discount          float64 `json:"discount" validate:"gte=0"`
	Stock             *int    `json:"productCount" validate:"omitempty,gte=0"`
}

// UpdateProductInput is a partial product update. Nil fields are left unchanged.
type UpdateProductInput struct {
	CategoryID        *uint    `json:"categoryId,omitempty"`
	Name              *string  `json:"productName,omitempty" validate:"omitempty,max=200"`
	Brand             *string  `json:"brand,omitempty" validate:"omitempty,max=100"`
	Description       *string  `json:"description,omitempty" validate:"omitempty,min=5"`
	Price             *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Condition         *string  `json:"condition,omitempty" validate:"omitempty,max=50"`
	ImagePath         *string  `json:"imageUrl,omitempty" validate:"omitempty,imageurl"`
	DeliveryAvailable *bool    `json:"deliveryAvailable,omitempty"`
	Discount          *float64 `json:"discount,omitempty" validate:"omitempty,gte=0"`
	Stock             *int     `json:"productCount,omitempty" validate:"omitempty,gte=0"`
}

// IsEmpty reports whether the patch carries no field.
func (in *UpdateProductInput) IsEmpty() bool {
	return in.CategoryID == nil && in.Name == nil && in.Brand == nil && in.Description == nil &&
		in.Price == nil && in.Condition == nil && in.ImagePath == nil && in.DeliveryAvailable == nil &&
		in.Discount == nil && in.Stock == nil
}

// PriceFilterInput bounds a price filter. Nil bounds are open.
type PriceFilterInput struct {
	MinPrice *float64
	MaxPrice *float64
}

// ProductDetail is a product with its read-time rating.
type ProductDetail struct {
	Product *entity.Product `json:"product"`
	Rating  *entity.Rating  `json:"rating"`
}

// ProductUsecase defines product listing, discovery and maintenance.
type ProductUsecase interface {
	// CreateProduct inserts the product and notifies the shop's followers atomically.
	CreateProduct(ctx context.Context, userID uint, input *CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uint) (*ProductDetail, error)
	ListProducts(ctx context.Context, req pagination.Request) (*pagination.Page[*entity.Product], error)
	ListTrendingProducts(ctx context.Context, sort string, req pagination.Request) (*pagination.Page[*entity.Product], error)
	ListShopProducts(ctx context.Context, shopID uint) ([]*entity.Product, error)
	ListUserShopProducts(ctx context.Context, userID uint) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, userID, id uint, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, userID, id uint) error
	SearchProducts(ctx context.Context, input *SearchInput) ([]*entity.Product, error)
	FilterProducts(ctx context.Context, input *PriceFilterInput) ([]*entity.Product, error)
	UploadProductImage(ctx context.Context, userID, id uint, upload *UploadInput) (*entity.Product, error)
}
