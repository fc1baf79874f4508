package handler

import (
	"zembil/internal/delivery/api/middleware"
	"zembil/internal/delivery/api/response"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/usecase"

	"github.com/labstack/echo/v4"
)

// WishListHandler serves the caller's cart.
type WishListHandler struct {
	wishListUC usecase.WishListUsecase
}

// NewWishListHandler is the constructor for WishListHandler
func NewWishListHandler(wishListUC usecase.WishListUsecase) *WishListHandler {
	return &WishListHandler{wishListUC: wishListUC}
}

func (h *WishListHandler) ListItems(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items, err := h.wishListUC.ListItems(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, items)
}

func (h *WishListHandler) AddItem(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.AddWishListItemInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.wishListUC.AddItem(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, item)
}

func (h *WishListHandler) GetItem(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrWishListItemNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.wishListUC.GetItem(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, item)
}

func (h *WishListHandler) DeleteItem(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrWishListItemNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.wishListUC.DeleteItem(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Item removed from cart.")
}
