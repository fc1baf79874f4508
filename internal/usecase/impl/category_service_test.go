package impl

import (
	"context"
	"testing"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	mockRepo "zembil/internal/mocks/repository"
	"zembil/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and stores", func(t *testing.T) {
		repo := mockRepo.NewMockCategoryRepository(t)
		svc := NewCategoryService(repo)

		repo.EXPECT().CategoryNameExists(ctx, "Electronics").Return(false, nil)
		repo.EXPECT().
			CreateCategory(ctx, mock.MatchedBy(func(c *entity.Category) bool { return c.Name == "Electronics" })).
			Run(func(_ context.Context, c *entity.Category) { c.ID = 3 }).
			Return(nil)

		category, err := svc.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "  Electronics "})
		require.NoError(t, err)
		assert.Equal(t, uint(3), category.ID)
	})

	t.Run("blank name", func(t *testing.T) {
		svc := NewCategoryService(mockRepo.NewMockCategoryRepository(t))

		_, err := svc.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "   "})

		var fieldErr *domainerrors.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Contains(t, fieldErr.Fields(), "categoryName")
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := mockRepo.NewMockCategoryRepository(t)
		svc := NewCategoryService(repo)
		repo.EXPECT().CategoryNameExists(ctx, "Books").Return(true, nil)

		_, err := svc.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Books"})
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateCategory)
	})

	t.Run("duplicate raced past the check", func(t *testing.T) {
		repo := mockRepo.NewMockCategoryRepository(t)
		svc := NewCategoryService(repo)
		repo.EXPECT().CategoryNameExists(ctx, "Books").Return(false, nil)
		repo.EXPECT().CreateCategory(ctx, mock.Anything).Return(repository.ErrDuplicateCategory)

		_, err := svc.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Books"})
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateCategory)
	})
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockCategoryRepository(t)
	svc := NewCategoryService(repo)

	repo.EXPECT().FindCategoryByID(ctx, uint(9)).Return(nil, repository.ErrCategoryNotFound)

	_, err := svc.GetCategory(ctx, 9)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
