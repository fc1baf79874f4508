package usecase

import (
	"context"

	"zembil/internal/domain/entity"
)

// CreateReviewInput defines a new review.
type CreateReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// UpdateReviewInput is a partial review update. Nil fields are left unchanged.
type UpdateReviewInput struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

// IsEmpty reports whether the patch carries no field.
func (in *UpdateReviewInput) IsEmpty() bool {
	return in.Rating == nil && in.Comment == nil
}

// ReviewUsecase manages product reviews.
type ReviewUsecase interface {
	// CreateReview stores the review and notifies the shop owner in one transaction.
	CreateReview(ctx context.Context, userID, productID uint, input *CreateReviewInput) (*entity.Review, error)
	ListProductReviews(ctx context.Context, productID uint) ([]*entity.Review, error)
	GetReview(ctx context.Context, productID, id uint) (*entity.Review, error)
	UpdateReview(ctx context.Context, userID, productID, id uint, input *UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, userID, productID, id uint) error
}
