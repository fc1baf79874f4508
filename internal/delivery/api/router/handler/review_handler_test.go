package handler

import (
	"net/http"
	"testing"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	usecasemocks "zembil/internal/mocks/usecase"
	"zembil/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReviewTest(t *testing.T) (*usecasemocks.MockReviewUsecase, *echo.Echo) {
	reviewUC := usecasemocks.NewMockReviewUsecase(t)
	h := NewReviewHandler(reviewUC)

	e := newTestEcho()
	user := asCaller(7, entity.RoleUser)
	e.GET("/products/:id/reviews", h.ListReviews)
	e.POST("/products/:id/reviews", h.CreateReview, user)
	e.GET("/products/:id/reviews/:reviewId", h.GetReview)
	e.PATCH("/products/:id/reviews/:reviewId", h.UpdateReview, user)
	e.DELETE("/products/:id/reviews/:reviewId", h.DeleteReview, user)

	return reviewUC, e
}

func TestCreateReview(t *testing.T) {
	reviewUC, e := newReviewTest(t)

	reviewUC.EXPECT().
		CreateReview(mock.Anything, uint(7), uint(42), &usecase.CreateReviewInput{Rating: 5, Comment: "Bright"}).
		Return(&entity.Review{ID: 1, Rating: 5, Comment: "Bright", UserID: 7, ProductID: 42}, nil)

	rec := serve(e, http.MethodPost, "/products/42/reviews", `{"rating":5,"comment":"Bright"}`)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestCreateReview_Duplicate(t *testing.T) {
	reviewUC, e := newReviewTest(t)

	reviewUC.EXPECT().CreateReview(mock.Anything, uint(7), uint(42), mock.Anything).
		Return(nil, domainerrors.ErrDuplicateReview)

	rec := serve(e, http.MethodPost, "/products/42/reviews", `{"rating":4}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_REVIEW", decode(t, rec).Error.Code)
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	_, e := newReviewTest(t)

	rec := serve(e, http.MethodPost, "/products/42/reviews", `{"rating":6}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "rating")
}

func TestReviewPaths(t *testing.T) {
	reviewUC, e := newReviewTest(t)

	reviewUC.EXPECT().GetReview(mock.Anything, uint(42), uint(3)).Return(&entity.Review{ID: 3, ProductID: 42}, nil)
	reviewUC.EXPECT().DeleteReview(mock.Anything, uint(7), uint(42), uint(3)).Return(domainerrors.ErrNotReviewAuthor)

	rec := serve(e, http.MethodGet, "/products/42/reviews/3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodDelete, "/products/42/reviews/3", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(e, http.MethodGet, "/products/42/reviews/x", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "REVIEW_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestUpdateReview_EmptyPatch(t *testing.T) {
	reviewUC, e := newReviewTest(t)

	reviewUC.EXPECT().UpdateReview(mock.Anything, uint(7), uint(42), uint(3), &usecase.UpdateReviewInput{}).
		Return(nil, domainerrors.ErrEmptyPatch)

	rec := serve(e, http.MethodPatch, "/products/42/reviews/3", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMPTY_PATCH", decode(t, rec).Error.Code)
}
