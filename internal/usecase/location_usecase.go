package usecase

import (
	"context"

	"zembil/internal/domain/entity"
)

// CreateLocationInput represents the input for adding a new location.
type CreateLocationInput struct {
	Longitude   float64 `json:"longitude" validate:"gt=-180,lt=180"`
	Latitude    float64 `json:"latitude" validate:"gt=-90,lt=90"`
	Description string  `json:"locationName" validate:"required,min=5"`
}

// LocationUsecase defines the interface for location management use cases.
type LocationUsecase interface {
	CreateLocation(ctx context.Context, input *CreateLocationInput) (*entity.Location, error)
	GetLocation(ctx context.Context, id uint) (*entity.Location, error)
	ListLocations(ctx context.Context) ([]*entity.Location, error)
}
