package usecase

import "context"

// LoginInput defines the credentials of a login attempt.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordInput requests a password reset mail. Host is the base URL the reset link points to.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
	Host  string `json:"host" validate:"required"`
}

// ResetPasswordInput sets a new password using a reset token.
type ResetPasswordInput struct {
	Token       string `json:"-"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// LoginOutput carries the access token issued on login.
type LoginOutput struct {
	Token string `json:"token"`
}

// AuthUsecase covers session and credential operations.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// Logout revokes the token identified by tokenID.
	Logout(ctx context.Context, tokenID string) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
