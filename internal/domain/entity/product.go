// Package entity contains the core business objects of the project.
package entity

import "time"

// Product is an item listed by a shop.
type Product struct {
	ID                uint      `json:"productId"`
	Name              string    `json:"productName"`
	CreatedAt         time.Time `json:"dateInserted"`
	Brand             string    `json:"brand"`
	ShopID            uint      `json:"shopId"`
	CategoryID        *uint     `json:"categoryId"`
	CategoryName      string    `json:"category,omitempty"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	Condition         string    `json:"condition"`
	ImagePath         string    `json:"imageUrl"`
	DeliveryAvailable bool      `json:"deliveryAvailable"`
	Discount          float64   `json:"discount"`
	Stock             int       `json:"productCount"`
}

// Rating is the read-time aggregate of a product's reviews.
type Rating struct {
	Average float64 `json:"averageRating"`
	Count   int64   `json:"ratingcount"`
}
