package impl

import (
	"context"
	"log/slog"

	"zembil/config"
	deliverycontext "zembil/internal/delivery/context"
	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/domain/service"
	"zembil/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager    repository.TransactionManager
	shopRepo     repository.ShopRepository
	locationRepo repository.LocationRepository
	categoryRepo repository.CategoryRepository
	proximity    service.ProximityCalculator
	storage      service.FileStorage
	qrCode       service.QRCodeService
	uploads      uploadPolicy
	logger       *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ShopRepo     repository.ShopRepository
	LocationRepo repository.LocationRepository
	CategoryRepo repository.CategoryRepository
	Proximity    service.ProximityCalculator
	Storage      service.FileStorage
	QRCode       service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewShopService creates the shop usecase.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		txManager:    params.TxManager,
		shopRepo:     params.ShopRepo,
		locationRepo: params.LocationRepo,
		categoryRepo: params.CategoryRepo,
		proximity:    params.Proximity,
		storage:      params.Storage,
		qrCode:       params.QRCode,
		uploads:      newUploadPolicy(params.Config),
		logger:       params.Logger,
	}
}

func (s *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateShop stores the location and the shop in one transaction.
func (s *shopService) CreateShop(ctx context.Context, userID uint, input *usecase.CreateShopInput) (*entity.Shop, error) {
	if err := validateCoordinates(input.Location.Latitude, input.Location.Longitude); err != nil {
		return nil, err
	}

	if err := s.ensureCategory(ctx, input.Shop.CategoryID); err != nil {
		return nil, err
	}

	exists, err := s.locationRepo.CoordinatesExist(ctx, input.Location.Latitude, input.Location.Longitude)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check coordinates")
	}
	if exists {
		return nil, domainerrors.ErrDuplicateLocation
	}

	location := newLocation(&input.Location)
	shop := &entity.Shop{
		Name:         input.Shop.Name,
		UserID:       userID,
		CategoryID:   input.Shop.CategoryID,
		ImagePath:    input.Shop.ImagePath,
		BuildingName: input.Shop.BuildingName,
		PhoneNumber:  input.Shop.PhoneNumber,
		PhoneNumber2: input.Shop.PhoneNumber2,
		Description:  input.Shop.Description,
	}

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewLocationRepository().CreateLocation(ctx, location); err != nil {
			return err
		}

		shop.LocationID = location.ID

		return txRepoFactory.NewShopRepository().CreateShop(ctx, shop)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateLocation) {
			return nil, domainerrors.ErrDuplicateLocation
		}

		s.log(ctx).Error("Failed to create shop", slog.Uint64("userID", uint64(userID)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute shop creation transaction")
	}

	shop.Location = location

	return shop, nil
}

func (s *shopService) ensureCategory(ctx context.Context, categoryID uint) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to find category")
	}

	return nil
}

// GetShop returns one shop with its category and location.
func (s *shopService) GetShop(ctx context.Context, id uint) (*entity.Shop, error) {
	shop, err := s.shopRepo.FindShopByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

// findOwnedShop loads a shop and checks that userID owns it. Existence is checked first.
func (s *shopService) findOwnedShop(ctx context.Context, userID, id uint) (*entity.Shop, error) {
	shop, err := s.GetShop(ctx, id)
	if err != nil {
		return nil, err
	}

	if !shop.IsOwnedBy(userID) {
		return nil, domainerrors.ErrNotShopOwner
	}

	return shop, nil
}

func (s *shopService) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := s.shopRepo.ListShops(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

func (s *shopService) ListUserShops(ctx context.Context, userID uint) ([]*entity.Shop, error) {
	shops, err := s.shopRepo.ListShopsByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user shops")
	}

	return shops, nil
}

// UpdateShop applies a partial update to a shop the caller owns.
func (s *shopService) UpdateShop(ctx context.Context, userID, id uint, input *usecase.UpdateShopInput) (*entity.Shop, error) {
	if input.IsEmpty() {
		return nil, domainerrors.ErrEmptyPatch
	}

	shop, err := s.findOwnedShop(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil && *input.CategoryID != shop.CategoryID {
		if err := s.ensureCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	applyShopPatch(shop, input)

	if err := s.saveShop(ctx, shop); err != nil {
		return nil, err
	}

	return shop, nil
}

func applyShopPatch(shop *entity.Shop, input *usecase.UpdateShopInput) {
	if input.Name != nil {
		shop.Name = *input.Name
	}
	if input.CategoryID != nil {
		shop.CategoryID = *input.CategoryID
		shop.CategoryName = ""
	}
	if input.BuildingName != nil {
		shop.BuildingName = *input.BuildingName
	}
	if input.PhoneNumber != nil {
		shop.PhoneNumber = *input.PhoneNumber
	}
	if input.PhoneNumber2 != nil {
		shop.PhoneNumber2 = *input.PhoneNumber2
	}
	if input.ImagePath != nil {
		shop.ImagePath = *input.ImagePath
	}
	if input.Description != nil {
		shop.Description = *input.Description
	}
}

func (s *shopService) saveShop(ctx context.Context, shop *entity.Shop) error {
	if err := s.shopRepo.UpdateShop(ctx, shop); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return domainerrors.ErrShopNotFound
		}

		return errors.Wrap(err, "failed to update shop")
	}

	return nil
}

// DeleteShop removes a shop the caller owns together with its location.
func (s *shopService) DeleteShop(ctx context.Context, userID, id uint) error {
	shop, err := s.findOwnedShop(ctx, userID, id)
	if err != nil {
		return err
	}

	return s.deleteShopWithLocation(ctx, shop)
}

func (s *shopService) deleteShopWithLocation(ctx context.Context, shop *entity.Shop) error {
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewShopRepository().DeleteShop(ctx, shop.ID); err != nil {
			return err
		}

		return txRepoFactory.NewLocationRepository().DeleteLocation(ctx, shop.LocationID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return domainerrors.ErrShopNotFound
		}

		s.log(ctx).Error("Failed to delete shop", slog.Uint64("shopID", uint64(shop.ID)), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute shop deletion transaction")
	}

	return nil
}

// SetShopStatus approves a shop, or removes it when the approval is withdrawn.
func (s *shopService) SetShopStatus(ctx context.Context, id uint, active bool) (*entity.Shop, error) {
	shop, err := s.GetShop(ctx, id)
	if err != nil {
		return nil, err
	}

	if !active {
		if err := s.deleteShopWithLocation(ctx, shop); err != nil {
			return nil, err
		}

		s.log(ctx).Info("Shop rejected and removed", slog.Uint64("shopID", uint64(id)))

		return nil, nil
	}

	shop.IsActive = true
	if err := s.saveShop(ctx, shop); err != nil {
		return nil, err
	}

	return shop, nil
}

// SearchShops matches shop and category names. An empty result is a not found error.
func (s *shopService) SearchShops(ctx context.Context, input *usecase.SearchInput) ([]*entity.Shop, error) {
	shops, err := s.shopRepo.SearchShops(ctx, input.Name, input.Category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search shops")
	}

	if len(shops) == 0 {
		return nil, domainerrors.ErrNoResults.WrapMessage("no shop matches the search")
	}

	return shops, nil
}

// FindNearbyShops returns the shops whose location lies within the radius of the given point.
func (s *shopService) FindNearbyShops(ctx context.Context, input *usecase.NearbyShopsInput) ([]*entity.Shop, error) {
	if input.RadiusKm < 0 {
		return nil, domainerrors.NewFieldError(map[string]string{"radius": "Radius must not be negative."})
	}
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	center := orb.Point{input.Longitude, input.Latitude}

	var (
		candidates []*entity.Location
		err        error
	)
	if bound, ok := s.proximity.BoundAround(center, input.RadiusKm); ok {
		candidates, err = s.locationRepo.FindLocationsInBound(ctx, bound)
	} else {
		candidates, err = s.locationRepo.ListLocations(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate locations")
	}

	locationIDs := make([]uint, 0, len(candidates))
	for _, location := range candidates {
		if s.proximity.DistanceKm(center, location.Point()) <= input.RadiusKm {
			locationIDs = append(locationIDs, location.ID)
		}
	}

	s.log(ctx).Debug("Proximity search",
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(locationIDs)),
		slog.Float64("radiusKm", input.RadiusKm),
	)

	shops, err := s.shopRepo.FindShopsByLocationIDs(ctx, locationIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shops by location")
	}

	return shops, nil
}

// UploadShopImage stores an image for a shop the caller owns and records its path.
func (s *shopService) UploadShopImage(ctx context.Context, userID, id uint, upload *usecase.UploadInput) (*entity.Shop, error) {
	shop, err := s.findOwnedShop(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	key, err := s.uploads.objectKey("shops", shop.ID, upload)
	if err != nil {
		return nil, err
	}

	err = storeUpload(ctx, s.log(ctx), s.storage, key, upload, func(path string) error {
		shop.ImagePath = path

		return s.saveShop(ctx, shop)
	})
	if err != nil {
		return nil, err
	}

	return shop, nil
}

// GetShopQRCode renders a PNG QR code linking to the shop.
func (s *shopService) GetShopQRCode(ctx context.Context, id uint) ([]byte, error) {
	if _, err := s.GetShop(ctx, id); err != nil {
		return nil, err
	}

	png, err := s.qrCode.GenerateShopQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate shop QR code")
	}

	return png, nil
}
