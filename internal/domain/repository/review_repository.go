package repository

import (
	"context"

	"zembil/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the user already reviewed the product.
	ErrDuplicateReview = errors.New("review already exists")
)

// ReviewRepository defines the persistence operations for reviews.
type ReviewRepository interface {
	// CreateReview persists a new review.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewByID retrieves a review by ID.
	FindReviewByID(ctx context.Context, id uint) (*entity.Review, error)

	// HasReviewed reports whether the user already reviewed the product. It reads from the primary.
	HasReviewed(ctx context.Context, userID, productID uint) (bool, error)

	// ListReviewsByProduct returns the reviews of a product ordered by ID.
	ListReviewsByProduct(ctx context.Context, productID uint) ([]*entity.Review, error)

	// GetProductRating aggregates the ratings of a product. Zero values when unreviewed.
	GetProductRating(ctx context.Context, productID uint) (*entity.Rating, error)

	// UpdateReview saves the rating and comment of a review.
	UpdateReview(ctx context.Context, review *entity.Review) error

	// DeleteReview removes a review.
	DeleteReview(ctx context.Context, id uint) error
}
