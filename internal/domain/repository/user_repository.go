// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"zembil/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user and fills its generated fields.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, id uint) (*entity.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListUsers returns all users ordered by ID.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UsernameExists reports whether the username is taken. It reads from the primary.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// EmailExists reports whether the email is registered. It reads from the primary.
	EmailExists(ctx context.Context, email string) (bool, error)

	// UpdateUser saves the mutable fields of a user.
	UpdateUser(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the password hash of a user.
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error

	// CountUsers returns the number of users.
	CountUsers(ctx context.Context) (int64, error)
}
