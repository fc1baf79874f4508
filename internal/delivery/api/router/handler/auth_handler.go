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

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves login, logout and password reset.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Login exchanges credentials for an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, output)
}

// Logout revokes the token the request was authenticated with.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context(), middleware.GetTokenID(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Successfully logged out.")
}

// ForgotPassword mails a reset link to the account's address.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var input usecase.ForgotPasswordInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.ForgotPassword(c.Request().Context(), &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Password reset link sent.")
}

// ResetPassword sets a new password using the token from the reset link.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.HandleAppError(c, domainerrors.ErrInvalidResetToken)
	}

	var input usecase.ResetPasswordInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}
	input.Token = token

	if err := h.authUC.ResetPassword(c.Request().Context(), &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Password has been reset.")
}
