package entity

import "time"

// RevokedToken marks a credential id (jti) as logged out.
type RevokedToken struct {
	ID        uint
	JTI       string
	RevokedAt time.Time
}
