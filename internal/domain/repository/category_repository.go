package repository

import (
	"context"

	"zembil/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when the category name is taken.
	ErrDuplicateCategory = errors.New("category already exists")
)

// CategoryRepository defines the persistence operations for categories.
type CategoryRepository interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// FindCategoryByID retrieves a category by ID.
	FindCategoryByID(ctx context.Context, id uint) (*entity.Category, error)

	// CategoryNameExists reports whether a category with the name exists.
	CategoryNameExists(ctx context.Context, name string) (bool, error)

	// ListCategories returns all categories ordered by ID.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
