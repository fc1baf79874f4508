package handler

import (
	"zembil/internal/delivery/api/middleware"
	"zembil/internal/delivery/api/response"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdvertisementHandler serves shop advertisements.
type AdvertisementHandler struct {
	adUC usecase.AdvertisementUsecase
}

// NewAdvertisementHandler is the constructor for AdvertisementHandler
func NewAdvertisementHandler(adUC usecase.AdvertisementUsecase) *AdvertisementHandler {
	return &AdvertisementHandler{adUC: adUC}
}

func (h *AdvertisementHandler) ListAdvertisements(c echo.Context) error {
	ads, err := h.adUC.ListAdvertisements(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ads)
}

// CreateAdvertisement stores an ad for one of the caller's shops. It stays inactive until approved.
func (h *AdvertisementHandler) CreateAdvertisement(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.CreateAdvertisementInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	ad, err := h.adUC.CreateAdvertisement(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, ad)
}

func (h *AdvertisementHandler) GetAdvertisement(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrAdvertisementNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ad, err := h.adUC.GetAdvertisement(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ad)
}

func (h *AdvertisementHandler) SetAdvertisementStatus(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrAdvertisementNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.AdvertisementStatusInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	ad, err := h.adUC.SetAdvertisementStatus(c.Request().Context(), id, *input.IsActive)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ad)
}

func (h *AdvertisementHandler) DeleteAdvertisement(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrAdvertisementNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adUC.DeleteAdvertisement(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Advertisement deleted.")
}
