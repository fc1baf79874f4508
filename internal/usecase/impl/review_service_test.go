package impl

import (
	"context"
	"testing"

	"zembil/internal/domain/constants"
	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	mockRepo "zembil/internal/mocks/repository"
	mockSvc "zembil/internal/mocks/service"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	tx          *txFixture
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
	shopRepo    *mockRepo.MockShopRepository
	userRepo    *mockRepo.MockUserRepository
	sink        *mockSvc.MockNotificationSink
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	f := reviewServiceFixtures{
		tx:          newTxFixture(t),
		reviewRepo:  mockRepo.NewMockReviewRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		shopRepo:    mockRepo.NewMockShopRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		sink:        mockSvc.NewMockNotificationSink(t),
	}

	f.service = NewReviewService(ReviewServiceParams{
		TxManager:   f.tx.manager,
		ReviewRepo:  f.reviewRepo,
		ProductRepo: f.productRepo,
		ShopRepo:    f.shopRepo,
		UserRepo:    f.userRepo,
		Sink:        f.sink,
		Logger:      testLogger(),
	})

	return f
}

func TestReviewService_CreateReview_NotifiesShopOwner(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().FindProductByID(ctx, uint(5)).Return(&entity.Product{ID: 5, ShopID: 3, Name: "Lamp"}, nil)
	f.reviewRepo.EXPECT().HasReviewed(ctx, uint(9), uint(5)).Return(false, nil)
	f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7, Name: "Lights"}, nil)
	f.userRepo.EXPECT().FindUserByID(ctx, uint(9)).Return(&entity.User{ID: 9, Username: "selam"}, nil)
	f.tx.expectExecute(ctx)
	f.tx.factory.EXPECT().NewReviewRepository().Return(f.tx.reviews)
	f.tx.reviews.EXPECT().
		CreateReview(ctx, mock.MatchedBy(func(review *entity.Review) bool {
			return review.UserID == 9 && review.ProductID == 5 && review.Rating == 4
		})).
		Return(nil)
	f.sink.EXPECT().
		Deliver(ctx, f.tx.factory, mock.MatchedBy(func(notifications []*entity.Notification) bool {
			return len(notifications) == 1 &&
				notifications[0].UserID == 7 &&
				notifications[0].Message == "selam reviewed Lamp from your shop Lights." &&
				notifications[0].Type == constants.NotificationTypeNewReview
		})).
		Return(nil)

	review, err := f.service.CreateReview(ctx, 9, 5, &usecase.CreateReviewInput{Rating: 4, Comment: "bright"})
	require.NoError(t, err)
	assert.Equal(t, "bright", review.Comment)
}

func TestReviewService_CreateReview_Errors(t *testing.T) {
	ctx := context.Background()
	input := &usecase.CreateReviewInput{Rating: 3}

	t.Run("unknown product", func(t *testing.T) {
		f := createTestReviewService(t)
		f.productRepo.EXPECT().FindProductByID(ctx, uint(5)).Return(nil, repository.ErrProductNotFound)

		_, err := f.service.CreateReview(ctx, 9, 5, input)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("already reviewed", func(t *testing.T) {
		f := createTestReviewService(t)
		f.productRepo.EXPECT().FindProductByID(ctx, uint(5)).Return(&entity.Product{ID: 5, ShopID: 3}, nil)
		f.reviewRepo.EXPECT().HasReviewed(ctx, uint(9), uint(5)).Return(true, nil)

		_, err := f.service.CreateReview(ctx, 9, 5, input)
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
	})

	t.Run("notification failure aborts the review", func(t *testing.T) {
		f := createTestReviewService(t)
		f.productRepo.EXPECT().FindProductByID(ctx, uint(5)).Return(&entity.Product{ID: 5, ShopID: 3}, nil)
		f.reviewRepo.EXPECT().HasReviewed(ctx, uint(9), uint(5)).Return(false, nil)
		f.shopRepo.EXPECT().FindShopByID(ctx, uint(3)).Return(&entity.Shop{ID: 3, UserID: 7}, nil)
		f.userRepo.EXPECT().FindUserByID(ctx, uint(9)).Return(&entity.User{ID: 9}, nil)
		f.tx.expectExecute(ctx)
		f.tx.factory.EXPECT().NewReviewRepository().Return(f.tx.reviews)
		f.tx.reviews.EXPECT().CreateReview(ctx, mock.Anything).Return(nil)
		f.sink.EXPECT().Deliver(ctx, f.tx.factory, mock.Anything).Return(errors.New("insert failed"))

		review, err := f.service.CreateReview(ctx, 9, 5, input)
		require.Error(t, err)
		assert.Nil(t, review)
	})
}

func TestReviewService_GetReview_OtherProductIsNotFound(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()

	f.reviewRepo.EXPECT().FindReviewByID(ctx, uint(2)).Return(&entity.Review{ID: 2, ProductID: 6}, nil)

	_, err := f.service.GetReview(ctx, 5, 2)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_UpdateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("only the author", func(t *testing.T) {
		f := createTestReviewService(t)
		f.reviewRepo.EXPECT().FindReviewByID(ctx, uint(2)).Return(&entity.Review{ID: 2, ProductID: 5, UserID: 1}, nil)

		_, err := f.service.UpdateReview(ctx, 9, 5, 2, &usecase.UpdateReviewInput{Rating: intPtr(1)})
		assert.ErrorIs(t, err, domainerrors.ErrNotReviewAuthor)
	})

	t.Run("empty patch", func(t *testing.T) {
		f := createTestReviewService(t)

		_, err := f.service.UpdateReview(ctx, 9, 5, 2, &usecase.UpdateReviewInput{})
		assert.ErrorIs(t, err, domainerrors.ErrEmptyPatch)
	})

	t.Run("updates the comment", func(t *testing.T) {
		f := createTestReviewService(t)
		f.reviewRepo.EXPECT().FindReviewByID(ctx, uint(2)).
			Return(&entity.Review{ID: 2, ProductID: 5, UserID: 9, Rating: 2, Comment: "meh"}, nil)
		f.reviewRepo.EXPECT().UpdateReview(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

		review, err := f.service.UpdateReview(ctx, 9, 5, 2, &usecase.UpdateReviewInput{Comment: strPtr("better now")})
		require.NoError(t, err)
		assert.Equal(t, "better now", review.Comment)
		assert.Equal(t, 2, review.Rating)
	})
}

func TestReviewService_DeleteReview(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()

	f.reviewRepo.EXPECT().FindReviewByID(ctx, uint(2)).Return(&entity.Review{ID: 2, ProductID: 5, UserID: 9}, nil)
	f.reviewRepo.EXPECT().DeleteReview(ctx, uint(2)).Return(nil)

	require.NoError(t, f.service.DeleteReview(ctx, 9, 5, 2))
}

func TestReviewService_ListProductReviews(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	reviews := []*entity.Review{{ID: 1}, {ID: 2}}

	f.productRepo.EXPECT().FindProductByID(ctx, uint(5)).Return(&entity.Product{ID: 5}, nil)
	f.reviewRepo.EXPECT().ListReviewsByProduct(ctx, uint(5)).Return(reviews, nil)

	got, err := f.service.ListProductReviews(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, reviews, got)
}
