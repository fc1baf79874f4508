// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"zembil/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new account.
type RegisterUserInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
}

// UpdateUserInput is a partial update of an account. Nil fields are left unchanged.
type UpdateUserInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,phone"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// IsEmpty reports whether the patch carries no field.
func (in *UpdateUserInput) IsEmpty() bool {
	return in.Name == nil && in.Username == nil && in.Email == nil && in.Phone == nil && in.Password == nil
}

// UserUsecase defines the interface for account management.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	RegisterAdmin(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	// ListUsers returns every account to administrators and only the caller's own account otherwise.
	ListUsers(ctx context.Context, callerID uint, callerRole entity.Role) ([]*entity.User, error)
	UpdateUser(ctx context.Context, callerID, id uint, input *UpdateUserInput) (*entity.User, error)
	GetStats(ctx context.Context) (*entity.Stats, error)
}
