package impl

import (
	"bytes"
	"context"
	"net/url"
	"testing"

	"zembil/config"
	"zembil/internal/domain/constants"
	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/domain/service"
	mockRepo "zembil/internal/mocks/repository"
	mockSvc "zembil/internal/mocks/service"
	"zembil/internal/usecase"
	"zembil/internal/usecase/pagination"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service      usecase.ProductUsecase
	tx           *txFixture
	productRepo  *mockRepo.MockProductRepository
	shopRepo     *mockRepo.MockShopRepository
	categoryRepo *mockRepo.MockCategoryRepository
	reviewRepo   *mockRepo.MockReviewRepository
	sink         *mockSvc.MockNotificationSink
	publisher    *mockSvc.MockEventPublisher
	storage      *mockSvc.MockFileStorage
}

func createTestProductService(t *testing.T) productServiceFixtures {
	f := productServiceFixtures{
		tx:           newTxFixture(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		shopRepo:     mockRepo.NewMockShopRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
		sink:         mockSvc.NewMockNotificationSink(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		storage:      mockSvc.NewMockFileStorage(t),
	}

	f.service = NewProductService(ProductServiceParams{
		TxManager:    f.tx.manager,
		ProductRepo:  f.productRepo,
		ShopRepo:     f.shopRepo,
		CategoryRepo: f.categoryRepo,
		ReviewRepo:   f.reviewRepo,
		Sink:         f.sink,
		Publisher:    f.publisher,
		Storage:      f.storage,
		Config:       &config.Config{},
		Logger:       testLogger(),
	})

	return f
}

func validProductInput() *usecase.CreateProductInput {
	return &usecase.CreateProductInput{
		ShopID:      3,
		Name:        "Phone",
		Description: "A fine phone",
		Price:       100,
	}
}

func TestProductService_CreateProduct_FansOutToFollowers(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	shop := &entity.Shop{ID: 3, Name: "Abebe Electronics", UserID: 7}
	followers := []uint{11, 12, 13}

	f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(shop, nil)
	f.productRepo.EXPECT().ProductNameExists(ctx, uint(3), "Phone").Return(false, nil)
	f.tx.expectExecute(ctx)
	f.tx.factory.EXPECT().NewProductRepository().Return(f.tx.products)
	f.tx.factory.EXPECT().NewFollowerRepository().Return(f.tx.follower)
	f.tx.products.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) { product.ID = 42 }).
		Return(nil)
	f.tx.follower.EXPECT().ListFollowerIDs(ctx, uint(3)).Return(followers, nil)
	f.sink.EXPECT().
		Deliver(ctx, f.tx.factory, mock.MatchedBy(func(notifications []*entity.Notification) bool {
			if len(notifications) != len(followers) {
				return false
			}
			for i, n := range notifications {
				if n.UserID != followers[i] ||
					n.Message != "Abebe Electronics added new product Phone" ||
					n.Type != constants.NotificationTypeNewProduct {
					return false
				}
			}

			return true
		})).
		Return(nil)
	f.publisher.EXPECT().
		PublishProductEvent(ctx, mock.MatchedBy(func(event *service.ProductEvent) bool {
			return event.ProductID == 42 && event.ShopID == 3 && assert.ObjectsAreEqual(followers, event.FollowerIDs)
		})).
		Return(nil)

	product, err := f.service.CreateProduct(ctx, 7, validProductInput())
	require.NoError(t, err)
	assert.Equal(t, uint(42), product.ID)
	assert.Equal(t, 1, product.Stock)
}

func TestProductService_CreateProduct_SinkFailureRollsBack(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	shop := &entity.Shop{ID: 3, Name: "Shop", UserID: 7}

	f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(shop, nil)
	f.productRepo.EXPECT().ProductNameExists(ctx, uint(3), "Phone").Return(false, nil)
	f.tx.expectExecute(ctx)
	f.tx.factory.EXPECT().NewProductRepository().Return(f.tx.products)
	f.tx.factory.EXPECT().NewFollowerRepository().Return(f.tx.follower)
	f.tx.products.EXPECT().CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	f.tx.follower.EXPECT().ListFollowerIDs(ctx, uint(3)).Return([]uint{1, 2}, nil)
	f.sink.EXPECT().Deliver(ctx, f.tx.factory, mock.Anything).Return(errors.New("insert failed"))

	product, err := f.service.CreateProduct(ctx, 7, validProductInput())
	require.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "insert failed")
	f.publisher.AssertNotCalled(t, "PublishProductEvent", mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct_NoFollowersSkipsSinkAndPublish(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7}, nil)
	f.productRepo.EXPECT().ProductNameExists(ctx, uint(3), "Phone").Return(false, nil)
	f.tx.expectExecute(ctx)
	f.tx.factory.EXPECT().NewProductRepository().Return(f.tx.products)
	f.tx.factory.EXPECT().NewFollowerRepository().Return(f.tx.follower)
	f.tx.products.EXPECT().CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	f.tx.follower.EXPECT().ListFollowerIDs(ctx, uint(3)).Return([]uint{}, nil)

	input := validProductInput()
	input.Stock = intPtr(0)

	product, err := f.service.CreateProduct(ctx, 7, input)
	require.NoError(t, err)
	assert.Equal(t, 0, product.Stock)
}

func TestProductService_CreateProduct_PublishFailureIsIgnored(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7}, nil)
	f.productRepo.EXPECT().ProductNameExists(ctx, uint(3), "Phone").Return(false, nil)
	f.tx.expectExecute(ctx)
	f.tx.factory.EXPECT().NewProductRepository().Return(f.tx.products)
	f.tx.factory.EXPECT().NewFollowerRepository().Return(f.tx.follower)
	f.tx.products.EXPECT().CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	f.tx.follower.EXPECT().ListFollowerIDs(ctx, uint(3)).Return([]uint{5}, nil)
	f.sink.EXPECT().Deliver(ctx, f.tx.factory, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishProductEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := f.service.CreateProduct(ctx, 7, validProductInput())
	require.NoError(t, err)
}

func TestProductService_CreateProduct_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(f productServiceFixtures)
		input   func() *usecase.CreateProductInput
		wantErr error
	}{
		{
			name: "shop missing",
			setup: func(f productServiceFixtures) {
				f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(nil, repository.ErrShopNotFound)
			},
			input:   validProductInput,
			wantErr: domainerrors.ErrShopNotFound,
		},
		{
			name: "caller does not own the shop",
			setup: func(f productServiceFixtures) {
				f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 99}, nil)
			},
			input:   validProductInput,
			wantErr: domainerrors.ErrNotShopOwner,
		},
		{
			name: "unknown category",
			setup: func(f productServiceFixtures) {
				f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7}, nil)
				f.categoryRepo.EXPECT().FindCategoryByID(ctx, uint(4)).Return(nil, repository.ErrCategoryNotFound)
			},
			input: func() *usecase.CreateProductInput {
				in := validProductInput()
				in.CategoryID = uintPtr(4)

				return in
			},
			wantErr: domainerrors.ErrCategoryNotFound,
		},
		{
			name: "duplicate name in shop",
			setup: func(f productServiceFixtures) {
				f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7}, nil)
				f.productRepo.EXPECT().ProductNameExists(ctx, uint(3), "Phone").Return(true, nil)
			},
			input:   validProductInput,
			wantErr: domainerrors.ErrDuplicateProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestProductService(t)
			tt.setup(f)

			product, err := f.service.CreateProduct(ctx, 7, tt.input())
			assert.Nil(t, product)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductService_GetProduct_IncludesRating(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	product := &entity.Product{ID: 5, Name: "Lamp"}

	f.productRepo.EXPECT().FindProductByID(ctx, uint(5)).Return(product, nil)
	f.reviewRepo.EXPECT().GetProductRating(ctx, uint(5)).Return(&entity.Rating{Average: 4.5, Count: 2}, nil)

	detail, err := f.service.GetProduct(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, product, detail.Product)
	assert.InDelta(t, 4.5, detail.Rating.Average, 1e-9)
	assert.Equal(t, int64(2), detail.Rating.Count)
}

func TestProductService_ListProducts_Paginates(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	u, _ := url.Parse("http://localhost/api/v1/products")
	req := pagination.Request{Page: 2, Limit: 2, URL: u}
	products := []*entity.Product{{ID: 3}, {ID: 4}}

	f.productRepo.EXPECT().ListProducts(ctx, 2, 2).Return(products, int64(5), nil)

	page, err := f.service.ListProducts(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, products, page.Results)
	assert.Equal(t, int64(5), page.Count)
	assert.NotNil(t, page.Next)
	assert.NotNil(t, page.Previous)
}

func TestProductService_ListTrendingProducts(t *testing.T) {
	ctx := context.Background()
	req := pagination.Request{Page: 1, Limit: 9}

	t.Run("latest", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().ListLatestProducts(ctx, 0, 9).Return([]*entity.Product{{ID: 9}}, int64(1), nil)

		page, err := f.service.ListTrendingProducts(ctx, usecase.TrendingLatest, req)
		require.NoError(t, err)
		assert.Len(t, page.Results, 1)
		assert.Nil(t, page.Next)
	})

	t.Run("popular", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().ListPopularProducts(ctx, 0, 9).Return([]*entity.Product{}, int64(0), nil)

		page, err := f.service.ListTrendingProducts(ctx, usecase.TrendingPopular, req)
		require.NoError(t, err)
		assert.Empty(t, page.Results)
	})

	for _, sort := range []string{"", "oldest"} {
		t.Run("unknown sort "+sort, func(t *testing.T) {
			f := createTestProductService(t)

			page, err := f.service.ListTrendingProducts(ctx, sort, req)
			assert.Nil(t, page)
			assert.ErrorIs(t, err, domainerrors.ErrUnknownTrendingSort)
		})
	}
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("empty patch", func(t *testing.T) {
		f := createTestProductService(t)

		_, err := f.service.UpdateProduct(ctx, 7, 5, &usecase.UpdateProductInput{})
		assert.ErrorIs(t, err, domainerrors.ErrEmptyPatch)
	})

	t.Run("not found before ownership", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().FindProductByID(ctx, uint(5)).Return(nil, repository.ErrProductNotFound)

		_, err := f.service.UpdateProduct(ctx, 7, 5, &usecase.UpdateProductInput{Price: float64Ptr(3)})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("not owner", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().FindProductByID(ctx, uint(5)).Return(&entity.Product{ID: 5, ShopID: 3}, nil)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 8}, nil)

		_, err := f.service.UpdateProduct(ctx, 7, 5, &usecase.UpdateProductInput{Price: float64Ptr(3)})
		assert.ErrorIs(t, err, domainerrors.ErrNotShopOwner)
	})

	t.Run("applies only set fields", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().FindProductByID(ctx, uint(5)).
			Return(&entity.Product{ID: 5, ShopID: 3, Name: "Lamp", Price: 10, Stock: 4}, nil)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7}, nil)
		f.productRepo.EXPECT().UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

		product, err := f.service.UpdateProduct(ctx, 7, 5, &usecase.UpdateProductInput{Price: float64Ptr(12.5)})
		require.NoError(t, err)
		assert.InDelta(t, 12.5, product.Price, 1e-9)
		assert.Equal(t, "Lamp", product.Name)
		assert.Equal(t, 4, product.Stock)
	})
}

func TestProductService_SearchProducts_EmptyIsNotFound(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().SearchProducts(ctx, "phone", "").Return([]*entity.Product{}, nil)

	products, err := f.service.SearchProducts(ctx, &usecase.SearchInput{Name: "phone"})
	assert.Nil(t, products)
	assert.ErrorIs(t, err, domainerrors.ErrNoResults)
}

func TestProductService_FilterProducts_EmptyIsNotAnError(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	minPrice := 10.0

	f.productRepo.EXPECT().
		FilterProducts(ctx, repository.PriceRange{Min: &minPrice}).
		Return([]*entity.Product{}, nil)

	products, err := f.service.FilterProducts(ctx, &usecase.PriceFilterInput{MinPrice: &minPrice})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_ListUserShopProducts(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	f.shopRepo.EXPECT().ListShopsByOwner(ctx, uint(7)).Return([]*entity.Shop{{ID: 1}, {ID: 2}}, nil)
	f.productRepo.EXPECT().ListProductsByShops(ctx, []uint{1, 2}).Return([]*entity.Product{{ID: 10}}, nil)

	products, err := f.service.ListUserShopProducts(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_UploadProductImage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and records the path", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().FindProductByID(ctx, uint(5)).Return(&entity.Product{ID: 5, ShopID: 3}, nil)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7}, nil)
		f.storage.EXPECT().
			Save(ctx, mock.MatchedBy(func(key string) bool {
				return len(key) > len("products/5/") && key[:len("products/5/")] == "products/5/"
			}), "image/png", mock.Anything).
			Return("/static/uploads/products/5/x-photo.png", nil)
		f.productRepo.EXPECT().UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

		product, err := f.service.UploadProductImage(ctx, 7, 5, &usecase.UploadInput{
			Filename:    "photo.png",
			ContentType: "image/png",
			Size:        3,
			Content:     bytes.NewReader([]byte("png")),
		})
		require.NoError(t, err)
		assert.Equal(t, "/static/uploads/products/5/x-photo.png", product.ImagePath)
	})

	t.Run("rejects disallowed extension", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().FindProductByID(ctx, uint(5)).Return(&entity.Product{ID: 5, ShopID: 3}, nil)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7}, nil)

		_, err := f.service.UploadProductImage(ctx, 7, 5, &usecase.UploadInput{
			Filename: "script.exe",
			Content:  bytes.NewReader(nil),
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidUpload)
	})

	t.Run("removes the object when the record update fails", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().FindProductByID(ctx, uint(5)).Return(&entity.Product{ID: 5, ShopID: 3}, nil)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7}, nil)
		f.storage.EXPECT().Save(ctx, mock.Anything, mock.Anything, mock.Anything).Return("/p", nil)
		f.productRepo.EXPECT().UpdateProduct(ctx, mock.Anything).Return(repository.ErrProductNotFound)
		f.storage.EXPECT().Delete(ctx, mock.Anything).Return(nil)

		_, err := f.service.UploadProductImage(ctx, 7, 5, &usecase.UploadInput{
			Filename: "a.jpg",
			Content:  bytes.NewReader([]byte("x")),
		})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}
