package model

import (
	"time"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// A shop lists each product name once.
type ProductModel struct {
	ID                uint      `gorm:"primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_products_shop_name"`
	CreatedAt         time.Time `gorm:"not null;index"`
	Brand             string    `gorm:"type:varchar(255)"`
	ShopID            uint      `gorm:"not null;uniqueIndex:idx_products_shop_name"`
	CategoryID        *uint     `gorm:"index"`
	Description       string    `gorm:"type:text;not null"`
	Price             float64   `gorm:"not null;check:price > 0"`
	Condition         string    `gorm:"type:varchar(50)"`
	ImagePath         string    `gorm:"type:text"`
	DeliveryAvailable bool      `gorm:"not null;default:false"`
	Discount          float64   `gorm:"not null;default:0;check:discount >= 0"`
	Stock             int       `gorm:"not null;check:stock >= 0"`

	Shop     *ShopModel     `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ID        uint      `gorm:"primaryKey"`
	Rating    int       `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment   string    `gorm:"type:text"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reviews_user_product"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_reviews_user_product;index"`
	CreatedAt time.Time `gorm:"not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// WishListItemModel is the GORM-specific struct for the 'wishlist_items' table.
type WishListItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	CreatedAt time.Time `gorm:"not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (WishListItemModel) TableName() string {
	return "wishlist_items"
}
