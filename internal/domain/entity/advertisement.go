package entity

// Advertisement promotes a shop for a date range. New ads start inactive.
type Advertisement struct {
	ID          uint    `json:"id"`
	ShopID      uint    `json:"shopId"`
	StartDate   Date    `json:"startDate"`
	EndDate     Date    `json:"endDate"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
	IsActive    bool    `json:"isActive"`
}
