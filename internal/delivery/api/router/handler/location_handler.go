package handler

import (
	"zembil/internal/delivery/api/response"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LocationHandler serves shop locations.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(locationUC usecase.LocationUsecase) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

func (h *LocationHandler) ListLocations(c echo.Context) error {
	locations, err := h.locationUC.ListLocations(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, locations)
}

// CreateLocation stores a location. Coordinates must be unique.
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	var input usecase.CreateLocationInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := h.locationUC.CreateLocation(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, location)
}

func (h *LocationHandler) GetLocation(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrLocationNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, location)
}
