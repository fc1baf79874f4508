package entity

import "time"

// WishListItem is a product saved to a user's cart.
type WishListItem struct {
	ID        uint      `json:"wishListItemId"`
	UserID    uint      `json:"userId"`
	ProductID uint      `json:"productId"`
	CreatedAt time.Time `json:"dateAdded"`
	Product   *Product  `json:"product,omitempty"`
}
