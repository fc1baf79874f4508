package handler

import (
	"zembil/internal/delivery/api/response"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the category catalogue.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(categoryUC usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC}
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, categories)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var input usecase.CreateCategoryInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, category)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrCategoryNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, category)
}
