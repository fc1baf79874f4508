// Package model holds the GORM table definitions.
package model

// All returns every table model in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&RevokedTokenModel{},
		&CategoryModel{},
		&LocationModel{},
		&ShopModel{},
		&ShopFollowerModel{},
		&AdvertisementModel{},
		&ProductModel{},
		&ReviewModel{},
		&WishListItemModel{},
		&NotificationModel{},
		&UserDeviceModel{},
	}
}
