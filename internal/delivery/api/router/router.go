// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"zembil/internal/delivery/api/middleware"
	"zembil/internal/delivery/api/router/handler"
	"zembil/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix is the path prefix of every API route.
const APIPrefix = "/api/v1"

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	UserHandler          *handler.UserHandler
	CategoryHandler      *handler.CategoryHandler
	LocationHandler      *handler.LocationHandler
	ShopHandler          *handler.ShopHandler
	ProductHandler       *handler.ProductHandler
	ReviewHandler        *handler.ReviewHandler
	WishListHandler      *handler.WishListHandler
	AdvertisementHandler *handler.AdvertisementHandler
	NotificationHandler  *handler.NotificationHandler
	DeviceHandler        *handler.DeviceHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth          *handler.AuthHandler
	users         *handler.UserHandler
	categories    *handler.CategoryHandler
	locations     *handler.LocationHandler
	shops         *handler.ShopHandler
	products      *handler.ProductHandler
	reviews       *handler.ReviewHandler
	wishList      *handler.WishListHandler
	ads           *handler.AdvertisementHandler
	notifications *handler.NotificationHandler
	devices       *handler.DeviceHandler
	authn         *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:          params.AuthHandler,
		users:         params.UserHandler,
		categories:    params.CategoryHandler,
		locations:     params.LocationHandler,
		shops:         params.ShopHandler,
		products:      params.ProductHandler,
		reviews:       params.ReviewHandler,
		wishList:      params.WishListHandler,
		ads:           params.AdvertisementHandler,
		notifications: params.NotificationHandler,
		devices:       params.DeviceHandler,
		authn:         params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticated := r.authn.Authenticate
	adminOnly := r.authn.RequireRole(entity.RoleAdmin)

	e.GET("/health", handler.HealthCheck)

	api := e.Group(APIPrefix)
	api.GET("/health", handler.HealthCheck)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("", r.auth.Login)
		authGroup.POST("/forgot", r.auth.ForgotPassword)
		authGroup.POST("/reset", r.auth.ResetPassword)
	}

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("", r.users.RegisterUser)
		usersGroup.GET("", r.users.ListUsers, authenticated)
		usersGroup.POST("/logout", r.auth.Logout, authenticated)
		usersGroup.GET("/shops", r.shops.ListUserShops, authenticated)
		usersGroup.GET("/notifications", r.notifications.ListNotifications, authenticated)
		usersGroup.DELETE("/notifications", r.notifications.ClearNotifications, authenticated)
		usersGroup.GET("/:id", r.users.GetUser, authenticated)
		usersGroup.PATCH("/:id", r.users.UpdateUser, authenticated)
	}

	devicesGroup := usersGroup.Group("/devices", authenticated)
	{
		devicesGroup.POST("", r.devices.RegisterDevice)
		devicesGroup.GET("", r.devices.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.devices.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.devices.DeleteDevice)
	}

	adminGroup := api.Group("/admin", authenticated, adminOnly)
	{
		adminGroup.POST("", r.users.RegisterAdmin)
		adminGroup.GET("/status", r.users.GetStats)
	}

	categoriesGroup := api.Group("/categories")
	{
		categoriesGroup.GET("", r.categories.ListCategories)
		categoriesGroup.POST("", r.categories.CreateCategory, authenticated, adminOnly)
		categoriesGroup.GET("/:id", r.categories.GetCategory)
	}

	locationsGroup := api.Group("/locations")
	{
		locationsGroup.GET("", r.locations.ListLocations)
		locationsGroup.POST("", r.locations.CreateLocation, authenticated)
		locationsGroup.GET("/:id", r.locations.GetLocation)
	}

	shopsGroup := api.Group("/shops")
	{
		shopsGroup.GET("", r.shops.ListShops)
		shopsGroup.POST("", r.shops.CreateShop, authenticated)
		shopsGroup.GET("/products", r.shops.ListUserShopProducts, authenticated)
		shopsGroup.GET("/:id", r.shops.GetShop)
		shopsGroup.PATCH("/:id", r.shops.UpdateShop, authenticated)
		shopsGroup.DELETE("/:id", r.shops.DeleteShop, authenticated)
		shopsGroup.PATCH("/:id/status", r.shops.SetShopStatus, authenticated, adminOnly)
		shopsGroup.GET("/:id/products", r.shops.ListShopProducts)
		shopsGroup.GET("/:id/followers", r.shops.GetFollowers)
		shopsGroup.POST("/:id/followers", r.shops.Follow, authenticated)
		shopsGroup.DELETE("/:id/followers", r.shops.Unfollow, authenticated)
		shopsGroup.POST("/:id/uploads", r.shops.UploadImage, authenticated)
		shopsGroup.GET("/:id/qrcode", r.shops.GetQRCode)
	}

	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.products.ListProducts)
		productsGroup.POST("", r.products.CreateProduct, authenticated)
		productsGroup.GET("/trending", r.products.ListTrending)
		productsGroup.GET("/:id", r.products.GetProduct)
		productsGroup.PATCH("/:id", r.products.UpdateProduct, authenticated)
		productsGroup.DELETE("/:id", r.products.DeleteProduct, authenticated)
		productsGroup.POST("/:id/uploads", r.products.UploadImage, authenticated)
		productsGroup.GET("/:id/reviews", r.reviews.ListReviews)
		productsGroup.POST("/:id/reviews", r.reviews.CreateReview, authenticated)
		productsGroup.GET("/:id/reviews/:reviewId", r.reviews.GetReview)
		productsGroup.PATCH("/:id/reviews/:reviewId", r.reviews.UpdateReview, authenticated)
		productsGroup.DELETE("/:id/reviews/:reviewId", r.reviews.DeleteReview, authenticated)
	}

	api.GET("/filter/products", r.products.FilterProducts)

	searchGroup := api.Group("/search")
	{
		searchGroup.GET("/products", r.products.SearchProducts)
		searchGroup.GET("/shops", r.shops.SearchShops)
		searchGroup.GET("/shops/nearme", r.shops.NearMe)
	}

	cartGroup := api.Group("/cart", authenticated)
	{
		cartGroup.GET("", r.wishList.ListItems)
		cartGroup.POST("", r.wishList.AddItem)
		cartGroup.GET("/:id", r.wishList.GetItem)
		cartGroup.DELETE("/:id", r.wishList.DeleteItem)
	}

	adsGroup := api.Group("/ads")
	{
		adsGroup.GET("", r.ads.ListAdvertisements)
		adsGroup.POST("", r.ads.CreateAdvertisement, authenticated)
		adsGroup.GET("/:id", r.ads.GetAdvertisement)
		adsGroup.PATCH("/:id", r.ads.SetAdvertisementStatus, authenticated, adminOnly)
		adsGroup.DELETE("/:id", r.ads.DeleteAdvertisement, authenticated, adminOnly)
	}
}
