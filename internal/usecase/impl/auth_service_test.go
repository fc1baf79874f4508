package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/domain/repository"
	"zembil/internal/domain/service"
	mockRepo "zembil/internal/mocks/repository"
	mockSvc "zembil/internal/mocks/service"
	"zembil/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service          usecase.AuthUsecase
	userRepo         *mockRepo.MockUserRepository
	revokedTokenRepo *mockRepo.MockRevokedTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	mailer           *mockSvc.MockMailer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	f := authServiceFixtures{
		userRepo:         mockRepo.NewMockUserRepository(t),
		revokedTokenRepo: mockRepo.NewMockRevokedTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		mailer:           mockSvc.NewMockMailer(t),
	}

	f.service = NewAuthService(AuthServiceParams{
		UserRepo:         f.userRepo,
		RevokedTokenRepo: f.revokedTokenRepo,
		Hasher:           f.hasher,
		TokenService:     f.tokenService,
		Mailer:           f.mailer,
		Logger:           testLogger(),
	})

	return f
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: 4, Username: "selam", PasswordHash: "hash", Role: entity.RoleUser}

	t.Run("success", func(t *testing.T) {
		f := createTestAuthService(t)
		f.userRepo.EXPECT().FindUserByUsername(ctx, "selam").Return(user, nil)
		f.hasher.EXPECT().Check("s3cret-pass", "hash").Return(true)
		f.tokenService.EXPECT().GenerateToken(uint(4), entity.RoleUser).Return("signed.jwt.token", nil)

		out, err := f.service.Login(ctx, &usecase.LoginInput{Username: "selam", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", out.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := createTestAuthService(t)
		f.userRepo.EXPECT().FindUserByUsername(ctx, "selam").Return(user, nil)
		f.hasher.EXPECT().Check("nope", "hash").Return(false)

		_, err := f.service.Login(ctx, &usecase.LoginInput{Username: "selam", Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown username looks the same", func(t *testing.T) {
		f := createTestAuthService(t)
		f.userRepo.EXPECT().FindUserByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := f.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the jti", func(t *testing.T) {
		f := createTestAuthService(t)
		f.revokedTokenRepo.EXPECT().
			RevokeToken(ctx, mock.MatchedBy(func(token *entity.RevokedToken) bool {
				return token.JTI == "jti-1" && !token.RevokedAt.IsZero()
			})).
			Return(nil)

		require.NoError(t, f.service.Logout(ctx, "jti-1"))
	})

	t.Run("token without id", func(t *testing.T) {
		f := createTestAuthService(t)

		assert.ErrorIs(t, f.service.Logout(ctx, ""), domainerrors.ErrInvalidToken)
	})
}

func TestAuthService_IsTokenRevoked(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.revokedTokenRepo.EXPECT().IsTokenRevoked(ctx, "jti-1").Return(true, nil)

	revoked, err := f.service.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: 4, Username: "selam", Email: "selam@example.com"}

	t.Run("mails a reset link", func(t *testing.T) {
		f := createTestAuthService(t)
		f.userRepo.EXPECT().FindUserByEmail(ctx, "selam@example.com").Return(user, nil)
		f.tokenService.EXPECT().GenerateResetToken(uint(4)).Return("reset-token", nil)
		f.tokenService.EXPECT().GetResetTokenDuration().Return(15 * time.Minute)
		f.mailer.EXPECT().
			Send(ctx, mock.MatchedBy(func(mail *service.Mail) bool {
				return mail.To == "selam@example.com" &&
					mail.Subject == "Reset your zembil password" &&
					strings.Contains(mail.Body, "It expires in 15 minutes.") &&
					strings.Contains(mail.Body, "http://shop.example.com/auth/reset?token=reset-token")
			})).
			Return(nil)

		err := f.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "selam@example.com", Host: "shop.example.com"})
		require.NoError(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := createTestAuthService(t)
		f.userRepo.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		err := f.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "ghost@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("mail failure", func(t *testing.T) {
		f := createTestAuthService(t)
		f.userRepo.EXPECT().FindUserByEmail(ctx, "selam@example.com").Return(user, nil)
		f.tokenService.EXPECT().GenerateResetToken(uint(4)).Return("reset-token", nil)
		f.tokenService.EXPECT().GetResetTokenDuration().Return(15 * time.Minute)
		f.mailer.EXPECT().Send(ctx, mock.Anything).Return(errors.New("smtp down"))

		err := f.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "selam@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrMailFailed)
	})
}

func TestResetLink(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{host: "localhost:8000", want: "http://localhost:8000/auth/reset?token=a%2Bb"},
		{host: "https://zembil.example.com/", want: "https://zembil.example.com/auth/reset?token=a%2Bb"},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.want, resetLink(tt.host, "a+b"))
		})
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the new hash", func(t *testing.T) {
		f := createTestAuthService(t)
		f.tokenService.EXPECT().ValidateResetToken("reset-token").Return(uint(4), nil)
		f.hasher.EXPECT().Hash("brand-new").Return("new-hash", nil)
		f.userRepo.EXPECT().UpdatePassword(ctx, uint(4), "new-hash").Return(nil)

		err := f.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "brand-new"})
		require.NoError(t, err)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := createTestAuthService(t)
		f.tokenService.EXPECT().ValidateResetToken("garbage").Return(uint(0), errors.New("malformed"))

		err := f.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: "garbage", NewPassword: "brand-new"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
	})

	t.Run("user deleted since issue", func(t *testing.T) {
		f := createTestAuthService(t)
		f.tokenService.EXPECT().ValidateResetToken("reset-token").Return(uint(4), nil)
		f.hasher.EXPECT().Hash("brand-new").Return("new-hash", nil)
		f.userRepo.EXPECT().UpdatePassword(ctx, uint(4), "new-hash").Return(repository.ErrUserNotFound)

		err := f.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: "reset-token", NewPassword: "brand-new"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
	})
}
