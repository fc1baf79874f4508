package usecase

import (
	"context"

	"zembil/internal/domain/entity"
)

// CreateCategoryInput defines a new category.
type CreateCategoryInput struct {
	Name string `json:"categoryName" validate:"required,max=100"`
}

// CategoryUsecase manages product and shop categories.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	GetCategory(ctx context.Context, id uint) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
