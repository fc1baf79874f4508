package handler

import (
	"log/slog"

	"zembil/internal/delivery/api/middleware"
	"zembil/internal/delivery/api/response"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDevice stores the caller's push token, refreshing a known device.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.DeviceInfo
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, device)
}

// GetUserDevices handles retrieving all user devices
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, devices)
}

// UpdateFCMToken handles updating FCM token for a device
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deviceID, err := pathID(c, "id", domainerrors.ErrDeviceNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateFCMTokenInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, input.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "FCM token updated successfully")
}

// DeleteDevice removes one of the caller's devices.
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deviceID, err := pathID(c, "id", domainerrors.ErrDeviceNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.DeleteDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Device removed successfully")
}
