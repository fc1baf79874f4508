// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"zembil/config"
	"zembil/internal/domain/entity"
	"zembil/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or purpose checks.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	resetSecret  []byte        // Secret key for signing password reset tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	resetTTL     time.Duration // Time-to-live for reset tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Reset == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.Auth == nil {
		return nil, errors.New("auth configuration must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		resetSecret:  []byte(cfg.SecretKey.Reset),
		accessTTL:    cfg.Auth.TokenTTL,
		resetTTL:     cfg.Auth.ResetTokenTTL,
	}, nil
}

// GenerateToken signs an access token carrying the user's role and a fresh jti.
func (s *jwtService) GenerateToken(userID uint, role entity.Role) (string, error) {
	return s.sign(&service.Claims{
		Role:             role,
		RegisteredClaims: s.registeredClaims(userID, s.accessTTL),
	}, s.accessSecret)
}

// ValidateToken verifies an access token. Reset tokens are rejected.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims, err := s.parse(tokenString, s.accessSecret)
	if err != nil {
		return nil, err
	}

	if claims.Purpose != "" || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GenerateResetToken signs a password reset token.
func (s *jwtService) GenerateResetToken(userID uint) (string, error) {
	return s.sign(&service.Claims{
		Purpose:          service.TokenPurposeReset,
		RegisteredClaims: s.registeredClaims(userID, s.resetTTL),
	}, s.resetSecret)
}

// ValidateResetToken verifies a reset token and returns the user ID it was issued for.
func (s *jwtService) ValidateResetToken(tokenString string) (uint, error) {
	claims, err := s.parse(tokenString, s.resetSecret)
	if err != nil {
		return 0, err
	}

	if claims.Purpose != service.TokenPurposeReset {
		return 0, ErrInvalidToken
	}

	return claims.UserID()
}

// GetResetTokenDuration returns the configured lifetime of reset tokens.
func (s *jwtService) GetResetTokenDuration() time.Duration {
	return s.resetTTL
}

func (s *jwtService) registeredClaims(userID uint, ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()

	return jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (s *jwtService) sign(claims *service.Claims, secret []byte) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) parse(tokenString string, secret []byte) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := claims.UserID(); err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	return claims, nil
}
