package entity

import "time"

// Review is a user's rating of a product. A user reviews a product at most once.
type Review struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UserID    uint      `json:"userId"`
	ProductID uint      `json:"productId"`
	CreatedAt time.Time `json:"reviewDate"`
}
