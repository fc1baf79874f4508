package usecase

import (
	"context"

	"zembil/internal/domain/entity"
)

// CreateAdvertisementInput defines a new advertisement for a shop the caller owns.
type CreateAdvertisementInput struct {
	ShopID      uint        `json:"shopId" validate:"required"`
	StartDate   entity.Date `json:"startDate"`
	EndDate     entity.Date `json:"endDate"`
	Description string      `json:"description" validate:"max=2000"`
	Discount    float64     `json:"discount" validate:"gte=0"`
}

// AdvertisementStatusInput toggles an advertisement.
type AdvertisementStatusInput struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// AdvertisementUsecase manages shop advertisements.
type AdvertisementUsecase interface {
	// CreateAdvertisement stores an inactive advertisement.
	CreateAdvertisement(ctx context.Context, userID uint, input *CreateAdvertisementInput) (*entity.Advertisement, error)
	GetAdvertisement(ctx context.Context, id uint) (*entity.Advertisement, error)
	ListAdvertisements(ctx context.Context) ([]*entity.Advertisement, error)
	SetAdvertisementStatus(ctx context.Context, id uint, active bool) (*entity.Advertisement, error)
	DeleteAdvertisement(ctx context.Context, id uint) error
}
