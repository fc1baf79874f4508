package impl

import (
	"bytes"
	"context"
	"testing"

	"zembil/config"
	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/infra/geo"
	mockRepo "zembil/internal/mocks/repository"
	mockSvc "zembil/internal/mocks/service"
	"zembil/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopServiceFixtures struct {
	service      usecase.ShopUsecase
	tx           *txFixture
	shopRepo     *mockRepo.MockShopRepository
	locationRepo *mockRepo.MockLocationRepository
	categoryRepo *mockRepo.MockCategoryRepository
	proximity    *mockSvc.MockProximityCalculator
	storage      *mockSvc.MockFileStorage
	qrCode       *mockSvc.MockQRCodeService
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	f := shopServiceFixtures{
		tx:           newTxFixture(t),
		shopRepo:     mockRepo.NewMockShopRepository(t),
		locationRepo: mockRepo.NewMockLocationRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		proximity:    mockSvc.NewMockProximityCalculator(t),
		storage:      mockSvc.NewMockFileStorage(t),
		qrCode:       mockSvc.NewMockQRCodeService(t),
	}

	f.service = NewShopService(ShopServiceParams{
		TxManager:    f.tx.manager,
		ShopRepo:     f.shopRepo,
		LocationRepo: f.locationRepo,
		CategoryRepo: f.categoryRepo,
		Proximity:    f.proximity,
		Storage:      f.storage,
		QRCode:       f.qrCode,
		Config:       &config.Config{Storage: &config.StorageConfig{AllowedExtensions: []string{".png"}, MaxUploadSize: 1024}},
		Logger:       testLogger(),
	})

	return f
}

func validShopInput() *usecase.CreateShopInput {
	return &usecase.CreateShopInput{
		Location: usecase.CreateLocationInput{Latitude: 9.03, Longitude: 38.74, Description: "Bole road"},
		Shop: usecase.ShopInput{
			Name:         "Abebe Electronics",
			CategoryID:   2,
			BuildingName: "Edna Mall",
			PhoneNumber:  "+251911000000",
			Description:  "Phones and laptops",
		},
	}
}

func TestShopService_CreateShop(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()

	f.categoryRepo.EXPECT().FindCategoryByID(ctx, uint(2)).Return(&entity.Category{ID: 2}, nil)
	f.locationRepo.EXPECT().CoordinatesExist(ctx, 9.03, 38.74).Return(false, nil)
	f.tx.expectExecute(ctx)
	f.tx.factory.EXPECT().NewLocationRepository().Return(f.tx.location)
	f.tx.factory.EXPECT().NewShopRepository().Return(f.tx.shops)
	f.tx.location.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.Location")).
		Run(func(_ context.Context, location *entity.Location) { location.ID = 17 }).
		Return(nil)
	f.tx.shops.EXPECT().
		CreateShop(ctx, mock.MatchedBy(func(shop *entity.Shop) bool {
			return shop.LocationID == 17 && shop.UserID == 7 && !shop.IsActive
		})).
		Return(nil)

	shop, err := f.service.CreateShop(ctx, 7, validShopInput())
	require.NoError(t, err)
	assert.Equal(t, uint(17), shop.LocationID)
	require.NotNil(t, shop.Location)
	assert.Equal(t, "Bole road", shop.Location.Description)
}

func TestShopService_CreateShop_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid coordinates", func(t *testing.T) {
		f := createTestShopService(t)
		input := validShopInput()
		input.Location.Latitude = 90

		_, err := f.service.CreateShop(ctx, 7, input)

		var fieldErr *domainerrors.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Contains(t, fieldErr.Fields(), "latitude")
	})

	t.Run("unknown category", func(t *testing.T) {
		f := createTestShopService(t)
		f.categoryRepo.EXPECT().FindCategoryByID(ctx, uint(2)).Return(nil, repository.ErrCategoryNotFound)

		_, err := f.service.CreateShop(ctx, 7, validShopInput())
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})

	t.Run("coordinates already taken", func(t *testing.T) {
		f := createTestShopService(t)
		f.categoryRepo.EXPECT().FindCategoryByID(ctx, uint(2)).Return(&entity.Category{ID: 2}, nil)
		f.locationRepo.EXPECT().CoordinatesExist(ctx, 9.03, 38.74).Return(true, nil)

		_, err := f.service.CreateShop(ctx, 7, validShopInput())
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateLocation)
	})

	t.Run("concurrent location insert", func(t *testing.T) {
		f := createTestShopService(t)
		f.categoryRepo.EXPECT().FindCategoryByID(ctx, uint(2)).Return(&entity.Category{ID: 2}, nil)
		f.locationRepo.EXPECT().CoordinatesExist(ctx, 9.03, 38.74).Return(false, nil)
		f.tx.expectExecute(ctx)
		f.tx.factory.EXPECT().NewLocationRepository().Return(f.tx.location)
		f.tx.location.EXPECT().CreateLocation(ctx, mock.Anything).Return(repository.ErrDuplicateLocation)

		_, err := f.service.CreateShop(ctx, 7, validShopInput())
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateLocation)
	})

	t.Run("shop insert failure", func(t *testing.T) {
		f := createTestShopService(t)
		f.categoryRepo.EXPECT().FindCategoryByID(ctx, uint(2)).Return(&entity.Category{ID: 2}, nil)
		f.locationRepo.EXPECT().CoordinatesExist(ctx, 9.03, 38.74).Return(false, nil)
		f.tx.expectExecute(ctx)
		f.tx.factory.EXPECT().NewLocationRepository().Return(f.tx.location)
		f.tx.factory.EXPECT().NewShopRepository().Return(f.tx.shops)
		f.tx.location.EXPECT().CreateLocation(ctx, mock.Anything).Return(nil)
		f.tx.shops.EXPECT().CreateShop(ctx, mock.Anything).Return(errors.New("connection reset"))

		shop, err := f.service.CreateShop(ctx, 7, validShopInput())
		require.Error(t, err)
		assert.Nil(t, shop)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestShopService_UpdateShop(t *testing.T) {
	ctx := context.Background()

	t.Run("missing shop wins over ownership", func(t *testing.T) {
		f := createTestShopService(t)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(nil, repository.ErrShopNotFound)

		_, err := f.service.UpdateShop(ctx, 7, 3, &usecase.UpdateShopInput{Name: strPtr("New")})
		assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
	})

	t.Run("not owner", func(t *testing.T) {
		f := createTestShopService(t)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 8}, nil)

		_, err := f.service.UpdateShop(ctx, 7, 3, &usecase.UpdateShopInput{Name: strPtr("New")})
		assert.ErrorIs(t, err, domainerrors.ErrNotShopOwner)
	})

	t.Run("renames", func(t *testing.T) {
		f := createTestShopService(t)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7, Name: "Old"}, nil)
		f.shopRepo.EXPECT().UpdateShop(ctx, mock.AnythingOfType("*entity.Shop")).Return(nil)

		shop, err := f.service.UpdateShop(ctx, 7, 3, &usecase.UpdateShopInput{Name: strPtr("New")})
		require.NoError(t, err)
		assert.Equal(t, "New", shop.Name)
	})
}

func TestShopService_DeleteShop_RemovesLocation(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()

	f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7, LocationID: 17}, nil)
	f.tx.expectExecute(ctx)
	f.tx.factory.EXPECT().NewShopRepository().Return(f.tx.shops)
	f.tx.factory.EXPECT().NewLocationRepository().Return(f.tx.location)
	f.tx.shops.EXPECT().DeleteShop(ctx, uint(3)).Return(nil)
	f.tx.location.EXPECT().DeleteLocation(ctx, uint(17)).Return(nil)

	require.NoError(t, f.service.DeleteShop(ctx, 7, 3))
}

func TestShopService_SetShopStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("activate", func(t *testing.T) {
		f := createTestShopService(t)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3}, nil)
		f.shopRepo.EXPECT().
			UpdateShop(ctx, mock.MatchedBy(func(shop *entity.Shop) bool { return shop.IsActive })).
			Return(nil)

		shop, err := f.service.SetShopStatus(ctx, 3, true)
		require.NoError(t, err)
		assert.True(t, shop.IsActive)
	})

	t.Run("reject deletes shop and location", func(t *testing.T) {
		f := createTestShopService(t)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, LocationID: 17}, nil)
		f.tx.expectExecute(ctx)
		f.tx.factory.EXPECT().NewShopRepository().Return(f.tx.shops)
		f.tx.factory.EXPECT().NewLocationRepository().Return(f.tx.location)
		f.tx.shops.EXPECT().DeleteShop(ctx, uint(3)).Return(nil)
		f.tx.location.EXPECT().DeleteLocation(ctx, uint(17)).Return(nil)

		shop, err := f.service.SetShopStatus(ctx, 3, false)
		require.NoError(t, err)
		assert.Nil(t, shop)
	})
}

func TestShopService_FindNearbyShops(t *testing.T) {
	ctx := context.Background()
	center := orb.Point{38.74, 9.03}
	near := &entity.Location{ID: 1, Longitude: 38.75, Latitude: 9.04}
	far := &entity.Location{ID: 2, Longitude: 38.90, Latitude: 9.20}

	t.Run("filters candidates by distance", func(t *testing.T) {
		f := createTestShopService(t)
		bound := orb.Bound{Min: orb.Point{38, 8}, Max: orb.Point{39, 10}}

		f.proximity.EXPECT().BoundAround(center, 5.0).Return(bound, true)
		f.locationRepo.EXPECT().FindLocationsInBound(ctx, bound).Return([]*entity.Location{near, far}, nil)
		f.proximity.EXPECT().DistanceKm(center, near.Point()).Return(1.5)
		f.proximity.EXPECT().DistanceKm(center, far.Point()).Return(25.0)
		f.shopRepo.EXPECT().FindShopsByLocationIDs(ctx, []uint{1}).Return([]*entity.Shop{{ID: 10, LocationID: 1}}, nil)

		shops, err := f.service.FindNearbyShops(ctx, &usecase.NearbyShopsInput{Latitude: 9.03, Longitude: 38.74, RadiusKm: 5})
		require.NoError(t, err)
		require.Len(t, shops, 1)
		assert.Equal(t, uint(10), shops[0].ID)
	})

	t.Run("falls back to a full scan near the poles", func(t *testing.T) {
		f := createTestShopService(t)

		f.proximity.EXPECT().BoundAround(center, 5.0).Return(orb.Bound{}, false)
		f.locationRepo.EXPECT().ListLocations(ctx).Return([]*entity.Location{near}, nil)
		f.proximity.EXPECT().DistanceKm(center, near.Point()).Return(5.0)
		f.shopRepo.EXPECT().FindShopsByLocationIDs(ctx, []uint{1}).Return([]*entity.Shop{{ID: 10}}, nil)

		shops, err := f.service.FindNearbyShops(ctx, &usecase.NearbyShopsInput{Latitude: 9.03, Longitude: 38.74, RadiusKm: 5})
		require.NoError(t, err)
		assert.Len(t, shops, 1)
	})

	t.Run("zero radius keeps a shop at the query point", func(t *testing.T) {
		f := createTestShopService(t)
		svc := NewShopService(ShopServiceParams{
			TxManager:    f.tx.manager,
			ShopRepo:     f.shopRepo,
			LocationRepo: f.locationRepo,
			CategoryRepo: f.categoryRepo,
			Proximity:    geo.NewProximityCalculator(),
			Storage:      f.storage,
			QRCode:       f.qrCode,
			Config:       &config.Config{Storage: &config.StorageConfig{}},
			Logger:       testLogger(),
		})
		here := &entity.Location{ID: 3, Longitude: 38.74, Latitude: 9.03}

		f.locationRepo.EXPECT().FindLocationsInBound(ctx, mock.Anything).Return([]*entity.Location{here, near}, nil)
		f.shopRepo.EXPECT().FindShopsByLocationIDs(ctx, []uint{3}).Return([]*entity.Shop{{ID: 30, LocationID: 3}}, nil)

		shops, err := svc.FindNearbyShops(ctx, &usecase.NearbyShopsInput{Latitude: 9.03, Longitude: 38.74, RadiusKm: 0})
		require.NoError(t, err)
		require.Len(t, shops, 1)
		assert.Equal(t, uint(30), shops[0].ID)
	})

	t.Run("negative radius", func(t *testing.T) {
		f := createTestShopService(t)

		_, err := f.service.FindNearbyShops(ctx, &usecase.NearbyShopsInput{Latitude: 9.03, Longitude: 38.74, RadiusKm: -1})

		var fieldErr *domainerrors.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Contains(t, fieldErr.Fields(), "radius")
	})
}

func TestShopService_SearchShops_EmptyIsNotFound(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()

	f.shopRepo.EXPECT().SearchShops(ctx, "", "phones").Return(nil, nil)

	_, err := f.service.SearchShops(ctx, &usecase.SearchInput{Category: "phones"})
	assert.ErrorIs(t, err, domainerrors.ErrNoResults)
}

func TestShopService_UploadShopImage(t *testing.T) {
	ctx := context.Background()

	t.Run("too large", func(t *testing.T) {
		f := createTestShopService(t)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7}, nil)

		_, err := f.service.UploadShopImage(ctx, 7, 3, &usecase.UploadInput{
			Filename: "a.png",
			Size:     2048,
			Content:  bytes.NewReader(nil),
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidUpload)
	})

	t.Run("extension outside configured list", func(t *testing.T) {
		f := createTestShopService(t)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7}, nil)

		_, err := f.service.UploadShopImage(ctx, 7, 3, &usecase.UploadInput{
			Filename: "a.jpg",
			Size:     10,
			Content:  bytes.NewReader(nil),
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidUpload)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := createTestShopService(t)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7}, nil)
		f.storage.EXPECT().Save(ctx, mock.Anything, "image/png", mock.Anything).Return("", errors.New("bucket gone"))

		_, err := f.service.UploadShopImage(ctx, 7, 3, &usecase.UploadInput{
			Filename:    "a.png",
			ContentType: "image/png",
			Size:        10,
			Content:     bytes.NewReader([]byte("x")),
		})
		assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
	})

	t.Run("stores and records the path", func(t *testing.T) {
		f := createTestShopService(t)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7}, nil)
		f.storage.EXPECT().Save(ctx, mock.Anything, "image/png", mock.Anything).Return("/static/uploads/shops/3/a.png", nil)
		f.shopRepo.EXPECT().UpdateShop(ctx, mock.AnythingOfType("*entity.Shop")).Return(nil)

		shop, err := f.service.UploadShopImage(ctx, 7, 3, &usecase.UploadInput{
			Filename:    "a.png",
			ContentType: "image/png",
			Size:        10,
			Content:     bytes.NewReader([]byte("x")),
		})
		require.NoError(t, err)
		assert.Equal(t, "/static/uploads/shops/3/a.png", shop.ImagePath)
	})
}

func TestShopService_GetShopQRCode(t *testing.T) {
	ctx := context.Background()

	t.Run("renders for an existing shop", func(t *testing.T) {
		f := createTestShopService(t)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3}, nil)
		f.qrCode.EXPECT().GenerateShopQR(uint(3)).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := f.service.GetShopQRCode(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
	})

	t.Run("unknown shop", func(t *testing.T) {
		f := createTestShopService(t)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(nil, repository.ErrShopNotFound)

		_, err := f.service.GetShopQRCode(ctx, 3)
		assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
	})
}
