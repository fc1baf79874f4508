package impl

import (
	"context"
	"fmt"
	"log/slog"

	"zembil/config"
	deliverycontext "zembil/internal/delivery/context"
	"zembil/internal/domain/constants"
	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/domain/service"
	"zembil/internal/usecase"
	"zembil/internal/usecase/pagination"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultStock = 1

// productService implements the ProductUsecase interface.
type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	shopRepo     repository.ShopRepository
	categoryRepo repository.CategoryRepository
	reviewRepo   repository.ReviewRepository
	sink         service.NotificationSink
	publisher    service.EventPublisher
	storage      service.FileStorage
	uploads      uploadPolicy
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	ShopRepo     repository.ShopRepository
	CategoryRepo repository.CategoryRepository
	ReviewRepo   repository.ReviewRepository
	Sink         service.NotificationSink
	Publisher    service.EventPublisher
	Storage      service.FileStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProductService creates the product usecase.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		shopRepo:     params.ShopRepo,
		categoryRepo: params.CategoryRepo,
		reviewRepo:   params.ReviewRepo,
		sink:         params.Sink,
		publisher:    params.Publisher,
		storage:      params.Storage,
		uploads:      newUploadPolicy(params.Config),
		logger:       params.Logger,
	}
}

func (s *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateProduct lists a product in a shop the caller owns and notifies every follower of the shop.
// The product and the notifications are written in one transaction.
func (s *productService) CreateProduct(ctx context.Context, userID uint, input *usecase.CreateProductInput) (*entity.Product, error) {
	shop, err := s.findShop(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	if !shop.IsOwnedBy(userID) {
		return nil, domainerrors.ErrNotShopOwner
	}

	if input.CategoryID != nil {
		if err := s.ensureCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	exists, err := s.productRepo.ProductNameExists(ctx, shop.ID, input.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check product name")
	}
	if exists {
		return nil, domainerrors.ErrDuplicateProduct
	}

	product := newProduct(input)

	var followerIDs []uint
	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewProductRepository().CreateProduct(ctx, product); err != nil {
			return err
		}

		ids, listErr := txRepoFactory.NewFollowerRepository().ListFollowerIDs(ctx, shop.ID)
		if listErr != nil {
			return errors.Wrap(listErr, "failed to list followers")
		}
		followerIDs = ids

		if len(followerIDs) == 0 {
			return nil
		}

		return s.sink.Deliver(ctx, txRepoFactory, newProductNotifications(shop, product, followerIDs))
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateProduct) {
			return nil, domainerrors.ErrDuplicateProduct
		}

		s.log(ctx).Error("Failed to create product", slog.Uint64("shopID", uint64(shop.ID)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product creation transaction")
	}

	s.log(ctx).Info("Product created",
		slog.Uint64("productID", uint64(product.ID)),
		slog.Uint64("shopID", uint64(shop.ID)),
		slog.Int("followersNotified", len(followerIDs)),
	)

	s.publishProductCreated(ctx, shop, product, followerIDs)

	return product, nil
}

func newProduct(input *usecase.CreateProductInput) *entity.Product {
	stock := defaultStock
	if input.Stock != nil {
		stock = *input.Stock
	}

	return &entity.Product{
		Name:              input.Name,
		Brand:             input.Brand,
		ShopID:            input.ShopID,
		CategoryID:        input.CategoryID,
		Description:       input.Description,
		Price:             input.Price,
		Condition:         input.Condition,
		ImagePath:         input.ImagePath,
		DeliveryAvailable: input.DeliveryAvailable,
		Discount:          input.Discount,
		Stock:             stock,
	}
}

func newProductNotifications(shop *entity.Shop, product *entity.Product, followerIDs []uint) []*entity.Notification {
	message := fmt.Sprintf("%s added new product %s", shop.Name, product.Name)

	notifications := make([]*entity.Notification, 0, len(followerIDs))
	for _, followerID := range followerIDs {
		notifications = append(notifications, &entity.Notification{
			UserID:  followerID,
			Message: message,
			Type:    constants.NotificationTypeNewProduct,
		})
	}

	return notifications
}

// publishProductCreated announces the committed product. Failures are logged only.
func (s *productService) publishProductCreated(ctx context.Context, shop *entity.Shop, product *entity.Product, followerIDs []uint) {
	if s.publisher == nil || len(followerIDs) == 0 {
		return
	}

	event := &service.ProductEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		ProductID:   product.ID,
		ProductName: product.Name,
		ShopID:      shop.ID,
		ShopName:    shop.Name,
		FollowerIDs: followerIDs,
	}

	if err := s.publisher.PublishProductEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish product event",
			slog.Uint64("productID", uint64(product.ID)),
			slog.Any("error", err),
		)
	}
}

func (s *productService) findShop(ctx context.Context, shopID uint) (*entity.Shop, error) {
	shop, err := s.shopRepo.FindShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

func (s *productService) ensureCategory(ctx context.Context, categoryID uint) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to find category")
	}

	return nil
}

func (s *productService) findProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// findOwnedProduct loads a product and checks that userID owns its shop. Existence is checked first.
func (s *productService) findOwnedProduct(ctx context.Context, userID, id uint) (*entity.Product, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	shop, err := s.findShop(ctx, product.ShopID)
	if err != nil {
		return nil, err
	}
	if !shop.IsOwnedBy(userID) {
		return nil, domainerrors.ErrNotShopOwner
	}

	return product, nil
}

// GetProduct returns a product with its rating aggregate.
func (s *productService) GetProduct(ctx context.Context, id uint) (*usecase.ProductDetail, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	rating, err := s.reviewRepo.GetProductRating(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate rating")
	}

	return &usecase.ProductDetail{Product: product, Rating: rating}, nil
}

// ListProducts pages through all products by id.
func (s *productService) ListProducts(ctx context.Context, req pagination.Request) (*pagination.Page[*entity.Product], error) {
	products, total, err := s.productRepo.ListProducts(ctx, req.Offset(), req.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return pagination.NewPage(products, total, req), nil
}

// ListTrendingProducts pages through products ordered by recency or rating.
func (s *productService) ListTrendingProducts(ctx context.Context, sort string, req pagination.Request) (*pagination.Page[*entity.Product], error) {
	var list func(ctx context.Context, offset, limit int) ([]*entity.Product, int64, error)

	switch sort {
	case usecase.TrendingLatest:
		list = s.productRepo.ListLatestProducts
	case usecase.TrendingPopular:
		list = s.productRepo.ListPopularProducts
	default:
		return nil, domainerrors.ErrUnknownTrendingSort
	}

	products, total, err := list(ctx, req.Offset(), req.Limit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s products", sort)
	}

	return pagination.NewPage(products, total, req), nil
}

func (s *productService) ListShopProducts(ctx context.Context, shopID uint) ([]*entity.Product, error) {
	if _, err := s.findShop(ctx, shopID); err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListProductsByShops(ctx, []uint{shopID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop products")
	}

	return products, nil
}

// ListUserShopProducts returns the products of every shop the user owns.
func (s *productService) ListUserShopProducts(ctx context.Context, userID uint) ([]*entity.Product, error) {
	shops, err := s.shopRepo.ListShopsByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user shops")
	}

	shopIDs := make([]uint, 0, len(shops))
	for _, shop := range shops {
		shopIDs = append(shopIDs, shop.ID)
	}
	if len(shopIDs) == 0 {
		return []*entity.Product{}, nil
	}

	products, err := s.productRepo.ListProductsByShops(ctx, shopIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user shop products")
	}

	return products, nil
}

// UpdateProduct applies a partial update to a product of a shop the caller owns.
func (s *productService) UpdateProduct(ctx context.Context, userID, id uint, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if input.IsEmpty() {
		return nil, domainerrors.ErrEmptyPatch
	}

	product, err := s.findOwnedProduct(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != product.Name {
		exists, err := s.productRepo.ProductNameExists(ctx, product.ShopID, *input.Name)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check product name")
		}
		if exists {
			return nil, domainerrors.ErrDuplicateProduct
		}
	}

	if input.CategoryID != nil {
		if err := s.ensureCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	applyProductPatch(product, input)

	if err := s.saveProduct(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func applyProductPatch(product *entity.Product, input *usecase.UpdateProductInput) {
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
		product.CategoryName = ""
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Condition != nil {
		product.Condition = *input.Condition
	}
	if input.ImagePath != nil {
		product.ImagePath = *input.ImagePath
	}
	if input.DeliveryAvailable != nil {
		product.DeliveryAvailable = *input.DeliveryAvailable
	}
	if input.Discount != nil {
		product.Discount = *input.Discount
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
}

func (s *productService) saveProduct(ctx context.Context, product *entity.Product) error {
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return domainerrors.ErrProductNotFound
		case errors.Is(err, repository.ErrDuplicateProduct):
			return domainerrors.ErrDuplicateProduct
		default:
			return errors.Wrap(err, "failed to update product")
		}
	}

	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, userID, id uint) error {
	if _, err := s.findOwnedProduct(ctx, userID, id); err != nil {
		return err
	}

	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// SearchProducts matches product and category names. An empty result is a not found error.
func (s *productService) SearchProducts(ctx context.Context, input *usecase.SearchInput) ([]*entity.Product, error) {
	products, err := s.productRepo.SearchProducts(ctx, input.Name, input.Category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	if len(products) == 0 {
		return nil, domainerrors.ErrNoResults.WrapMessage("no product matches the search")
	}

	return products, nil
}

// FilterProducts returns the products inside the price range.
func (s *productService) FilterProducts(ctx context.Context, input *usecase.PriceFilterInput) ([]*entity.Product, error) {
	products, err := s.productRepo.FilterProducts(ctx, repository.PriceRange{
		Min: input.MinPrice,
		Max: input.MaxPrice,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter products")
	}

	return products, nil
}

// UploadProductImage stores an image for a product the caller owns and records its path.
func (s *productService) UploadProductImage(ctx context.Context, userID, id uint, upload *usecase.UploadInput) (*entity.Product, error) {
	product, err := s.findOwnedProduct(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	key, err := s.uploads.objectKey("products", product.ID, upload)
	if err != nil {
		return nil, err
	}

	err = storeUpload(ctx, s.log(ctx), s.storage, key, upload, func(path string) error {
		product.ImagePath = path

		return s.saveProduct(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}
