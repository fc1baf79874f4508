package service

import (
	"strconv"
	"time"

	"zembil/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenPurposeReset marks a password reset token.
const TokenPurposeReset = "reset"

// Claims defines the custom claims for the JWT tokens.
// The subject holds the decimal user ID and the registered ID holds the jti.
type Claims struct {
	Role    entity.Role `json:"role,omitempty"`
	Purpose string      `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid subject claim")
	}

	return uint(id), nil
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken signs an access token for the user.
	GenerateToken(userID uint, role entity.Role) (string, error)

	// ValidateToken checks the signature and expiry of an access token.
	ValidateToken(tokenString string) (*Claims, error)

	// GenerateResetToken signs a short-lived password reset token for the user.
	GenerateResetToken(userID uint) (string, error)

	// ValidateResetToken verifies a reset token and returns the user it was issued for.
	ValidateResetToken(tokenString string) (uint, error)

	// GetResetTokenDuration returns the configured lifetime of reset tokens.
	GetResetTokenDuration() time.Duration
}
