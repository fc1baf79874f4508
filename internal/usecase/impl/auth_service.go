package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	deliverycontext "zembil/internal/delivery/context"
	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/domain/service"
	"zembil/internal/usecase"
	"zembil/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const resetMailSubject = "Reset your zembil password"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo         repository.UserRepository
	revokedTokenRepo repository.RevokedTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	mailer           service.Mailer
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	RevokedTokenRepo repository.RevokedTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Mailer           service.Mailer
	Logger           *slog.Logger
}

// NewAuthService creates the authentication usecase.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:         params.UserRepo,
		revokedTokenRepo: params.RevokedTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		mailer:           params.Mailer,
		logger:           params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login exchanges a username and password for an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindUserByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Rejected login", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.LoginOutput{Token: token}, nil
}

// Logout blacklists the token id. Revoking an already revoked token succeeds.
func (srv *authService) Logout(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return domainerrors.ErrInvalidToken.WrapMessage("token has no id")
	}

	if err := srv.revokedTokenRepo.RevokeToken(ctx, &entity.RevokedToken{
		JTI:       tokenID,
		RevokedAt: time.Now().UTC(),
	}); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	return nil
}

// IsTokenRevoked reports whether the token id was logged out.
func (srv *authService) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	revoked, err := srv.revokedTokenRepo.IsTokenRevoked(ctx, tokenID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check token revocation")
	}

	return revoked, nil
}

// ForgotPassword mails a password reset link to the account owning the email.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	user, err := srv.userRepo.FindUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("no account uses this email")
		}

		return errors.Wrap(err, "failed to find user")
	}

	token, err := srv.tokenService.GenerateResetToken(user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	link := resetLink(input.Host, token)
	mail := &service.Mail{
		To:      user.Email,
		Subject: resetMailSubject,
		Body: fmt.Sprintf(
			"Hello %s,\n\nUse the link below to reset your password. It expires in %s.\n\n%s\n",
			user.Username, util.FormatDuration(srv.tokenService.GetResetTokenDuration()), link,
		),
	}

	if err := srv.mailer.Send(ctx, mail); err != nil {
		srv.log(ctx).Error("Failed to send reset mail", slog.Uint64("userID", uint64(user.ID)), slog.Any("error", err))

		return domainerrors.ErrMailFailed.WrapMessage("failed to send reset mail")
	}

	return nil
}

func resetLink(host, token string) string {
	host = strings.TrimRight(host, "/")
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}

	return host + "/auth/reset?token=" + url.QueryEscape(token)
}

// ResetPassword verifies a reset token and stores the new password.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	userID, err := srv.tokenService.ValidateResetToken(input.Token)
	if err != nil {
		return domainerrors.ErrInvalidResetToken.WrapMessage("reset token is invalid or expired")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidResetToken.WrapMessage("reset token refers to an unknown user")
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password reset", slog.Uint64("userID", uint64(userID)))

	return nil
}
