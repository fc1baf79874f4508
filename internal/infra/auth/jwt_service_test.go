package auth

import (
	"testing"
	"time"

	"zembil/config"
	"zembil/internal/domain/entity"
	"zembil/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(tokenTTL, resetTTL time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			TokenTTL:      tokenTTL,
			ResetTokenTTL: resetTTL,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Reset = "test_reset_secret_key_very_long_for_testing"

	return cfg
}

func newTestJWTService(t *testing.T, tokenTTL, resetTTL time.Duration) service.TokenService {
	t.Helper()

	jwtService, err := NewJWTService(newTestConfig(tokenTTL, resetTTL))
	require.NoError(t, err)

	return jwtService
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService := newTestJWTService(t, time.Hour, time.Minute)

	token, err := jwtService.GenerateToken(42, entity.RoleAdmin)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_TokensHaveDistinctIDs(t *testing.T) {
	jwtService := newTestJWTService(t, time.Hour, time.Minute)

	first, err := jwtService.GenerateToken(1, entity.RoleUser)
	require.NoError(t, err)
	second, err := jwtService.GenerateToken(1, entity.RoleUser)
	require.NoError(t, err)

	firstClaims, err := jwtService.ValidateToken(first)
	require.NoError(t, err)
	secondClaims, err := jwtService.ValidateToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t, -time.Minute, time.Minute)

	token, err := jwtService.GenerateToken(1, entity.RoleUser)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t, time.Hour, time.Minute)

	_, err := jwtService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	jwtService := newTestJWTService(t, time.Hour, time.Minute)

	claims := &service.Claims{
		Role: entity.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ID:        "forged",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	jwtService := newTestJWTService(t, time.Hour, time.Minute)

	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ID:        "none",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ResetToken(t *testing.T) {
	jwtService := newTestJWTService(t, time.Hour, 30*time.Minute)

	token, err := jwtService.GenerateResetToken(7)
	require.NoError(t, err)

	userID, err := jwtService.ValidateResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
	assert.Equal(t, 30*time.Minute, jwtService.GetResetTokenDuration())

	// A reset token is not an access token and vice versa.
	_, err = jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	access, err := jwtService.GenerateToken(7, entity.RoleUser)
	require.NoError(t, err)
	_, err = jwtService.ValidateResetToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := newTestConfig(time.Hour, time.Minute)
	cfg.SecretKey.Reset = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
