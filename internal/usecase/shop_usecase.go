package usecase

import (
	"context"

	"zembil/internal/domain/entity"
)

// ShopInput holds the shop half of a shop creation request.
type ShopInput struct {
	Name         string `json:"shopName" validate:"required,max=200"`
	CategoryID   uint   `json:"categoryId" validate:"required"`
	BuildingName string `json:"buildingName" validate:"required,max=200"`
	PhoneNumber  string `json:"phoneNumber" validate:"required,phone"`
	PhoneNumber2 string `json:"phoneNumber2" validate:"omitempty,phone"`
	ImagePath    string `json:"imageUrl" validate:"omitempty,imageurl"`
	Description  string `json:"description" validate:"required"`
}

// CreateShopInput creates a shop together with the location it occupies.
type CreateShopInput struct {
	Location CreateLocationInput `json:"location"`
	Shop     ShopInput           `json:"shop"`
}

// UpdateShopInput is a partial shop update. Nil fields are left unchanged.
type UpdateShopInput struct {
	Name         *string `json:"shopName,omitempty" validate:"omitempty,max=200"`
	CategoryID   *uint   `json:"categoryId,omitempty"`
	BuildingName *string `json:"buildingName,omitempty" validate:"omitempty,max=200"`
	PhoneNumber  *string `json:"phoneNumber,omitempty" validate:"omitempty,phone"`
	PhoneNumber2 *string `json:"phoneNumber2,omitempty" validate:"omitempty,phone"`
	ImagePath    *string `json:"imageUrl,omitempty" validate:"omitempty,imageurl"`
	Description  *string `json:"description,omitempty"`
}

// IsEmpty reports whether the patch carries no field.
func (in *UpdateShopInput) IsEmpty() bool {
	return in.Name == nil && in.CategoryID == nil && in.BuildingName == nil && in.PhoneNumber == nil &&
		in.PhoneNumber2 == nil && in.ImagePath == nil && in.Description == nil
}

// ShopStatusInput toggles administrator approval.
type ShopStatusInput struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// NearbyShopsInput is a proximity query around a point.
type NearbyShopsInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// ShopUsecase defines shop management and discovery.
type ShopUsecase interface {
	CreateShop(ctx context.Context, userID uint, input *CreateShopInput) (*entity.Shop, error)
	GetShop(ctx context.Context, id uint) (*entity.Shop, error)
	ListShops(ctx context.Context) ([]*entity.Shop, error)
	ListUserShops(ctx context.Context, userID uint) ([]*entity.Shop, error)
	UpdateShop(ctx context.Context, userID, id uint, input *UpdateShopInput) (*entity.Shop, error)
	// DeleteShop removes the shop and its location.
	DeleteShop(ctx context.Context, userID, id uint) error
	// SetShopStatus activates a shop, or deletes it when active is false. The returned shop is nil after a deletion.
	SetShopStatus(ctx context.Context, id uint, active bool) (*entity.Shop, error)
	SearchShops(ctx context.Context, input *SearchInput) ([]*entity.Shop, error)
	FindNearbyShops(ctx context.Context, input *NearbyShopsInput) ([]*entity.Shop, error)
	UploadShopImage(ctx context.Context, userID, id uint, upload *UploadInput) (*entity.Shop, error)
	GetShopQRCode(ctx context.Context, id uint) ([]byte, error)
}
