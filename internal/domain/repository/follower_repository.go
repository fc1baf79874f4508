package repository

import (
	"context"

	"zembil/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrFollowerNotFound is returned when the user does not follow the shop.
	ErrFollowerNotFound = errors.New("follower not found")
	// ErrAlreadyFollowing is returned when the follow relation already exists.
	ErrAlreadyFollowing = errors.New("already following")
)

// FollowerRepository defines the persistence operations for shop follow relations.
type FollowerRepository interface {
	// CreateFollower stores a follow relation.
	CreateFollower(ctx context.Context, follower *entity.ShopFollower) error

	// IsFollowing reports whether the user follows the shop. It reads from the primary.
	IsFollowing(ctx context.Context, userID, shopID uint) (bool, error)

	// ListFollowerIDs returns the IDs of the users following the shop.
	ListFollowerIDs(ctx context.Context, shopID uint) ([]uint, error)

	// DeleteFollower removes a follow relation.
	DeleteFollower(ctx context.Context, userID, shopID uint) error
}
