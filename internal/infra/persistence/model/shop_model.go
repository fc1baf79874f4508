package model

import (
	"time"
)

// ShopModel is the GORM-specific struct for the 'shops' table.
type ShopModel struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	UserID       uint      `gorm:"not null;index"`
	CategoryID   uint      `gorm:"not null;index"`
	LocationID   uint      `gorm:"not null;uniqueIndex"`
	ImagePath    string    `gorm:"type:text"`
	BuildingName string    `gorm:"type:varchar(255)"`
	PhoneNumber  string    `gorm:"type:varchar(20)"`
	PhoneNumber2 string    `gorm:"type:varchar(20)"`
	Description  string    `gorm:"type:text;not null"`
	IsActive     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Location *LocationModel `gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT"`

	// FollowerCount is filled by list queries only.
	FollowerCount *int64 `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// ShopFollowerModel is the GORM-specific struct for the 'shop_followers' table.
type ShopFollowerModel struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false"`
	ShopID    uint      `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time `gorm:"not null"`

	Shop *ShopModel `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ShopFollowerModel) TableName() string {
	return "shop_followers"
}

// AdvertisementModel is the GORM-specific struct for the 'advertisements' table.
type AdvertisementModel struct {
	ID          uint      `gorm:"primaryKey"`
	ShopID      uint      `gorm:"not null;index"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	Description string    `gorm:"type:text"`
	Discount    float64   `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:false"`

	Shop *ShopModel `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AdvertisementModel) TableName() string {
	return "advertisements"
}
