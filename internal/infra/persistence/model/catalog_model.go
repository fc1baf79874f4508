package model

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// LocationModel is the GORM-specific struct for the 'locations' table.
// A pair of coordinates is stored once.
type LocationModel struct {
	ID          uint    `gorm:"primaryKey"`
	Longitude   float64 `gorm:"type:decimal(11,8);not null;uniqueIndex:idx_locations_coordinates"`
	Latitude    float64 `gorm:"type:decimal(10,8);not null;uniqueIndex:idx_locations_coordinates"`
	Description string  `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
