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

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves account and admin endpoints.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterUser creates a regular account.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, user)
}

// RegisterAdmin creates an administrator account.
func (h *UserHandler) RegisterAdmin(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.RegisterAdmin(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, user)
}

// ListUsers returns every account to admins and the caller's own otherwise.
func (h *UserHandler) ListUsers(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	role, _ := middleware.GetRole(c)

	users, err := h.userUC.ListUsers(c.Request().Context(), userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, users)
}

// GetUser returns one account.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrUserNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// UpdateUser applies a partial update to the caller's own account.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrUserNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateUserInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), userID, id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// GetStats returns the admin dashboard counters.
func (h *UserHandler) GetStats(c echo.Context) error {
	stats, err := h.userUC.GetStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stats)
}
