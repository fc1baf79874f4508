// Package entity contains the core business objects of the project.
package entity

import "time"

// Notification is an in-app message addressed to one user.
type Notification struct {
	ID        uint      `json:"notificationId"`      // Surrogate key.
	UserID    uint      `json:"userId"`              // Recipient.
	Message   string    `json:"notificationMessage"` // Rendered message text.
	Type      string    `json:"notificationType"`    // Type tag, e.g. "New Product".
	Seen      bool      `json:"seen"`                // Set once the recipient lists it.
	CreatedAt time.Time `json:"createdAt"`           // Timestamp of creation.
}
