// Package entity contains the core business objects of the project.
package entity

import "time"

// User represents an account holder of the marketplace.
type User struct {
	ID           uint      `json:"userId"`             // Surrogate key.
	Name         string    `json:"name"`               // Display name.
	Username     string    `json:"username"`           // Unique login name.
	Email        string    `json:"email"`              // Unique e-mail address.
	PasswordHash string    `json:"-"`                  // bcrypt hash, never serialized.
	Role         Role      `json:"role"`               // user or admin.
	Phone        string    `json:"phone"`              // International format, e.g. +251911000000.
	CreatedAt    time.Time `json:"dateAccountCreated"` // Timestamp of account creation.
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}
