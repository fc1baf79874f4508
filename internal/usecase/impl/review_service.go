package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "zembil/internal/delivery/context"
	"zembil/internal/domain/constants"
	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/domain/service"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager   repository.TransactionManager
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
	userRepo    repository.UserRepository
	sink        service.NotificationSink
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	ShopRepo    repository.ShopRepository
	UserRepo    repository.UserRepository
	Sink        service.NotificationSink
	Logger      *slog.Logger
}

// NewReviewService creates the review usecase.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:   params.TxManager,
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		shopRepo:    params.ShopRepo,
		userRepo:    params.UserRepo,
		sink:        params.Sink,
		logger:      params.Logger,
	}
}

func (s *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *reviewService) findProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CreateReview stores a review and tells the shop owner about it. A user reviews a product once.
func (s *reviewService) CreateReview(ctx context.Context, userID, productID uint, input *usecase.CreateReviewInput) (*entity.Review, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	reviewed, err := s.reviewRepo.HasReviewed(ctx, userID, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing review")
	}
	if reviewed {
		return nil, domainerrors.ErrDuplicateReview
	}

	shop, err := s.shopRepo.FindShopByID(ctx, product.ShopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product shop")
	}

	reviewer, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviewer")
	}

	review := &entity.Review{
		Rating:    input.Rating,
		Comment:   input.Comment,
		UserID:    userID,
		ProductID: productID,
	}
	notification := &entity.Notification{
		UserID:  shop.UserID,
		Message: fmt.Sprintf("%s reviewed %s from your shop %s.", reviewer.Username, product.Name, shop.Name),
		Type:    constants.NotificationTypeNewReview,
	}

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewReviewRepository().CreateReview(ctx, review); err != nil {
			return err
		}

		return s.sink.Deliver(ctx, txRepoFactory, []*entity.Notification{notification})
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, domainerrors.ErrDuplicateReview
		}

		s.log(ctx).Error("Failed to create review", slog.Uint64("productID", uint64(productID)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute review creation transaction")
	}

	return review, nil
}

func (s *reviewService) ListProductReviews(ctx context.Context, productID uint) ([]*entity.Review, error) {
	if _, err := s.findProduct(ctx, productID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// GetReview returns a review of the given product. A review of another product is not found.
func (s *reviewService) GetReview(ctx context.Context, productID, id uint) (*entity.Review, error) {
	review, err := s.reviewRepo.FindReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	if review.ProductID != productID {
		return nil, domainerrors.ErrReviewNotFound
	}

	return review, nil
}

func (s *reviewService) findAuthoredReview(ctx context.Context, userID, productID, id uint) (*entity.Review, error) {
	review, err := s.GetReview(ctx, productID, id)
	if err != nil {
		return nil, err
	}

	if review.UserID != userID {
		return nil, domainerrors.ErrNotReviewAuthor
	}

	return review, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, userID, productID, id uint, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	if input.IsEmpty() {
		return nil, domainerrors.ErrEmptyPatch
	}

	review, err := s.findAuthoredReview(ctx, userID, productID, id)
	if err != nil {
		return nil, err
	}

	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}

	if err := s.reviewRepo.UpdateReview(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID, productID, id uint) error {
	if _, err := s.findAuthoredReview(ctx, userID, productID, id); err != nil {
		return err
	}

	if err := s.reviewRepo.DeleteReview(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}
