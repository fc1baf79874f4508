package model

import (
	"time"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Username     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:user"`
	Phone        string    `gorm:"type:varchar(20)"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RevokedTokenModel is the GORM-specific struct for the 'revoked_tokens' table.
type RevokedTokenModel struct {
	ID        uint      `gorm:"primaryKey"`
	JTI       string    `gorm:"column:jti;type:varchar(64);not null;uniqueIndex"`
	RevokedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}
