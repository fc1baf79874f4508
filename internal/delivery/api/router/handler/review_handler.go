package handler

import (
	"zembil/internal/delivery/api/middleware"
	"zembil/internal/delivery/api/response"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReviewHandler serves product reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(reviewUC usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviewUC: reviewUC}
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	productID, err := pathID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.ListProductReviews(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, reviews)
}

// CreateReview stores the caller's review and notifies the shop owner.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	productID, err := pathID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.CreateReviewInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), userID, productID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	productID, id, err := reviewPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.GetReview(c.Request().Context(), productID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, review)
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	productID, id, err := reviewPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateReviewInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), userID, productID, id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, review)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	productID, id, err := reviewPath(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), userID, productID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Review deleted.")
}

func reviewPath(c echo.Context) (productID, id uint, err error) {
	productID, err = pathID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return 0, 0, err
	}

	id, err = pathID(c, "reviewId", domainerrors.ErrReviewNotFound)
	if err != nil {
		return 0, 0, err
	}

	return productID, id, nil
}
