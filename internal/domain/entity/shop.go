// Package entity contains the core business objects of the project.
package entity

import "time"

// Shop is a storefront owned by a user and pinned to one location.
type Shop struct {
	ID           uint      `json:"id"`             // Surrogate key.
	Name         string    `json:"shopName"`       // Shop name, searchable.
	UserID       uint      `json:"userId"`         // Owner.
	CategoryID   uint      `json:"categoryId"`     // Required category.
	LocationID   uint      `json:"shopLocationId"` // Required, unique location.
	ImagePath    string    `json:"imageUrl"`       // Stored path of the uploaded image.
	BuildingName string    `json:"buildingName"`   // Free text building name.
	PhoneNumber  string    `json:"phoneNumber"`    // Primary contact number.
	PhoneNumber2 string    `json:"phoneNumber2"`   // Optional secondary number.
	Description  string    `json:"description"`    // Required description.
	IsActive     bool      `json:"isActive"`       // Set by an administrator.
	CreatedAt    time.Time `json:"createdAt"`      // Timestamp of creation.

	// Relations loaded on demand by the repository.
	CategoryName string    `json:"category,omitempty"`
	Location     *Location `json:"location,omitempty"`
	Followers    *int64    `json:"followers,omitempty"`
}

// IsOwnedBy reports whether the given user owns the shop.
func (s *Shop) IsOwnedBy(userID uint) bool {
	return s.UserID == userID
}

// ShopFollower records that a user follows a shop.
type ShopFollower struct {
	UserID    uint      `json:"userId"`
	ShopID    uint      `json:"shopId"`
	CreatedAt time.Time `json:"followedAt"`
}

// ShopFollowers summarizes the followers of one shop.
type ShopFollowers struct {
	ShopID    uint   `json:"shopId"`
	Followers int64  `json:"followers"`
	UserIDs   []uint `json:"userIds"`
}
