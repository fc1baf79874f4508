package impl

import (
	"context"
	"testing"
	"time"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	mockRepo "zembil/internal/mocks/repository"
	"zembil/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func adInput() *usecase.CreateAdvertisementInput {
	return &usecase.CreateAdvertisementInput{
		ShopID:      3,
		StartDate:   entity.NewDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:     entity.NewDate(time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)),
		Description: "January sale",
		Discount:    10,
	}
}

func TestAdvertisementService_CreateAdvertisement(t *testing.T) {
	ctx := context.Background()

	t.Run("starts inactive", func(t *testing.T) {
		adRepo := mockRepo.NewMockAdvertisementRepository(t)
		shopRepo := mockRepo.NewMockShopRepository(t)
		svc := NewAdvertisementService(adRepo, shopRepo)

		shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7}, nil)
		adRepo.EXPECT().
			CreateAdvertisement(ctx, mock.MatchedBy(func(ad *entity.Advertisement) bool { return !ad.IsActive })).
			Return(nil)

		ad, err := svc.CreateAdvertisement(ctx, 7, adInput())
		require.NoError(t, err)
		assert.False(t, ad.IsActive)
		assert.Equal(t, "January sale", ad.Description)
	})

	t.Run("end before start", func(t *testing.T) {
		svc := NewAdvertisementService(mockRepo.NewMockAdvertisementRepository(t), mockRepo.NewMockShopRepository(t))
		input := adInput()
		input.StartDate, input.EndDate = input.EndDate, input.StartDate

		_, err := svc.CreateAdvertisement(ctx, 7, input)

		var fieldErr *domainerrors.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Contains(t, fieldErr.Fields(), "endDate")
	})

	t.Run("not the shop owner", func(t *testing.T) {
		adRepo := mockRepo.NewMockAdvertisementRepository(t)
		shopRepo := mockRepo.NewMockShopRepository(t)
		svc := NewAdvertisementService(adRepo, shopRepo)

		shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 8}, nil)

		_, err := svc.CreateAdvertisement(ctx, 7, adInput())
		assert.ErrorIs(t, err, domainerrors.ErrNotShopOwner)
	})
}

func TestAdvertisementService_SetAdvertisementStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("activates", func(t *testing.T) {
		adRepo := mockRepo.NewMockAdvertisementRepository(t)
		svc := NewAdvertisementService(adRepo, mockRepo.NewMockShopRepository(t))

		adRepo.EXPECT().SetAdvertisementActive(ctx, uint(4), true).Return(nil)
		adRepo.EXPECT().FindAdvertisementByID(ctx, uint(4)).Return(&entity.Advertisement{ID: 4, IsActive: true}, nil)

		ad, err := svc.SetAdvertisementStatus(ctx, 4, true)
		require.NoError(t, err)
		assert.True(t, ad.IsActive)
	})

	t.Run("missing", func(t *testing.T) {
		adRepo := mockRepo.NewMockAdvertisementRepository(t)
		svc := NewAdvertisementService(adRepo, mockRepo.NewMockShopRepository(t))

		adRepo.EXPECT().SetAdvertisementActive(ctx, uint(4), false).Return(repository.ErrAdvertisementNotFound)

		_, err := svc.SetAdvertisementStatus(ctx, 4, false)
		assert.ErrorIs(t, err, domainerrors.ErrAdvertisementNotFound)
	})
}

func TestAdvertisementService_DeleteAdvertisement_NotFound(t *testing.T) {
	ctx := context.Background()
	adRepo := mockRepo.NewMockAdvertisementRepository(t)
	svc := NewAdvertisementService(adRepo, mockRepo.NewMockShopRepository(t))

	adRepo.EXPECT().DeleteAdvertisement(ctx, uint(4)).Return(repository.ErrAdvertisementNotFound)

	assert.ErrorIs(t, svc.DeleteAdvertisement(ctx, 4), domainerrors.ErrAdvertisementNotFound)
}
