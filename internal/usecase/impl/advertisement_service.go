package impl

import (
	"context"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
)

type advertisementService struct {
	adRepo   repository.AdvertisementRepository
	shopRepo repository.ShopRepository
}

// NewAdvertisementService creates a new advertisement service instance
func NewAdvertisementService(adRepo repository.AdvertisementRepository, shopRepo repository.ShopRepository) usecase.AdvertisementUsecase {
	return &advertisementService{
		adRepo:   adRepo,
		shopRepo: shopRepo,
	}
}

// CreateAdvertisement stores an advertisement for a shop the caller owns. It starts inactive.
func (s *advertisementService) CreateAdvertisement(ctx context.Context, userID uint, input *usecase.CreateAdvertisementInput) (*entity.Advertisement, error) {
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() && input.EndDate.Before(input.StartDate.Time) {
		return nil, domainerrors.NewFieldError(map[string]string{"endDate": "End date must not be before the start date."})
	}

	shop, err := s.shopRepo.FindShopByID(ctx, input.ShopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}
	if !shop.IsOwnedBy(userID) {
		return nil, domainerrors.ErrNotShopOwner
	}

	ad := &entity.Advertisement{
		ShopID:      input.ShopID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: input.Description,
		Discount:    input.Discount,
		IsActive:    false,
	}

	if err := s.adRepo.CreateAdvertisement(ctx, ad); err != nil {
		return nil, errors.Wrap(err, "failed to create advertisement")
	}

	return ad, nil
}

func (s *advertisementService) GetAdvertisement(ctx context.Context, id uint) (*entity.Advertisement, error) {
	ad, err := s.adRepo.FindAdvertisementByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdvertisementNotFound) {
			return nil, domainerrors.ErrAdvertisementNotFound
		}

		return nil, errors.Wrap(err, "failed to find advertisement")
	}

	return ad, nil
}

func (s *advertisementService) ListAdvertisements(ctx context.Context) ([]*entity.Advertisement, error) {
	ads, err := s.adRepo.ListAdvertisements(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list advertisements")
	}

	return ads, nil
}

func (s *advertisementService) SetAdvertisementStatus(ctx context.Context, id uint, active bool) (*entity.Advertisement, error) {
	if err := s.adRepo.SetAdvertisementActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrAdvertisementNotFound) {
			return nil, domainerrors.ErrAdvertisementNotFound
		}

		return nil, errors.Wrap(err, "failed to update advertisement")
	}

	return s.GetAdvertisement(ctx, id)
}

func (s *advertisementService) DeleteAdvertisement(ctx context.Context, id uint) error {
	if err := s.adRepo.DeleteAdvertisement(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAdvertisementNotFound) {
			return domainerrors.ErrAdvertisementNotFound
		}

		return errors.Wrap(err, "failed to delete advertisement")
	}

	return nil
}
