package impl

import (
	"context"
	"strings"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service instance
func NewCategoryService(categoryRepo repository.CategoryRepository) usecase.CategoryUsecase {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.NewFieldError(map[string]string{"categoryName": "This field may not be blank."})
	}

	exists, err := s.categoryRepo.CategoryNameExists(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check category name")
	}
	if exists {
		return nil, domainerrors.ErrDuplicateCategory
	}

	category := &entity.Category{Name: name}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, domainerrors.ErrDuplicateCategory
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id uint) (*entity.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}
