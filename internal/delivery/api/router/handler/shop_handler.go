package handler

import (
	"log/slog"
	"net/http"

	"zembil/config"
	"zembil/internal/delivery/api/middleware"
	"zembil/internal/delivery/api/response"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC     usecase.ShopUsecase
	ProductUC  usecase.ProductUsecase
	FollowerUC usecase.FollowerUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// ShopHandler serves shops, their followers, uploads and discovery.
type ShopHandler struct {
	shopUC     usecase.ShopUsecase
	productUC  usecase.ProductUsecase
	followerUC usecase.FollowerUsecase
	cfg        *config.Config
	logger     *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC:     params.ShopUC,
		productUC:  params.ProductUC,
		followerUC: params.FollowerUC,
		cfg:        params.Config,
		logger:     params.Logger,
	}
}

// ListShops returns every shop with its follower count.
func (h *ShopHandler) ListShops(c echo.Context) error {
	shops, err := h.shopUC.ListShops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, shops)
}

// CreateShop creates a shop and the location it occupies.
func (h *ShopHandler) CreateShop(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.CreateShopInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, shop)
}

func (h *ShopHandler) GetShop(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrShopNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.GetShop(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, shop)
}

func (h *ShopHandler) UpdateShop(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrShopNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateShopInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), userID, id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, shop)
}

func (h *ShopHandler) DeleteShop(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrShopNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.shopUC.DeleteShop(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Shop deleted.")
}

// SetShopStatus approves a shop, or removes it when isActive is false.
func (h *ShopHandler) SetShopStatus(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrShopNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.ShopStatusInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.SetShopStatus(c.Request().Context(), id, *input.IsActive)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if shop == nil {
		return response.Message(c, "Shop rejected and removed.")
	}

	return response.OK(c, shop)
}

// ListShopProducts returns the products of one shop.
func (h *ShopHandler) ListShopProducts(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrShopNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.ListShopProducts(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// ListUserShops returns the caller's shops.
func (h *ShopHandler) ListUserShops(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shops, err := h.shopUC.ListUserShops(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, shops)
}

// ListUserShopProducts returns the products of every shop the caller owns.
func (h *ShopHandler) ListUserShopProducts(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.ListUserShopProducts(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

func (h *ShopHandler) GetFollowers(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrShopNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	followers, err := h.followerUC.GetShopFollowers(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, followers)
}

func (h *ShopHandler) Follow(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrShopNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	follower, err := h.followerUC.FollowShop(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, follower)
}

func (h *ShopHandler) Unfollow(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrShopNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.followerUC.UnfollowShop(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Unfollowed shop.")
}

// UploadImage stores the multipart file as the shop image.
func (h *ShopHandler) UploadImage(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrShopNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	err = withUpload(c, func(upload *usecase.UploadInput) error {
		shop, err := h.shopUC.UploadShopImage(c.Request().Context(), userID, id, upload)
		if err != nil {
			return err
		}

		return response.Created(c, shop)
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return nil
}

// GetQRCode renders a PNG QR code linking to the shop.
func (h *ShopHandler) GetQRCode(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrShopNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.shopUC.GetShopQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// SearchShops matches shops by name and category.
func (h *ShopHandler) SearchShops(c echo.Context) error {
	input := &usecase.SearchInput{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
	}

	shops, err := h.shopUC.SearchShops(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, shops)
}

// NearMe returns shops within the radius (km) of the given point.
func (h *ShopHandler) NearMe(c echo.Context) error {
	fields := map[string]string{}

	latitude, err := optionalFloat(c, "latitude")
	if err != nil || latitude == nil {
		fields["latitude"] = "A valid number is required."
	}
	longitude, err := optionalFloat(c, "longitude")
	if err != nil || longitude == nil {
		fields["longitude"] = "A valid number is required."
	}
	radius, err := optionalFloat(c, "radius")
	if err != nil {
		fields["radius"] = "A valid number is required."
	}
	if len(fields) > 0 {
		return response.HandleAppError(c, domainerrors.NewFieldError(fields))
	}

	input := &usecase.NearbyShopsInput{
		Latitude:  *latitude,
		Longitude: *longitude,
		RadiusKm:  h.cfg.Proximity.DefaultRadiusKm,
	}
	if radius != nil {
		input.RadiusKm = *radius
	}

	shops, err := h.shopUC.FindNearbyShops(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, shops)
}
