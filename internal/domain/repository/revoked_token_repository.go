package repository

import (
	"context"

	"zembil/internal/domain/entity"
)

// RevokedTokenRepository stores the credential ids of logged-out tokens.
type RevokedTokenRepository interface {
	// RevokeToken records the token id. Revoking an already revoked id is not an error.
	RevokeToken(ctx context.Context, token *entity.RevokedToken) error

	// IsTokenRevoked reports whether the token id has been revoked.
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}
