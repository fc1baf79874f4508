package handler

import (
	"log/slog"

	"zembil/config"
	"zembil/internal/delivery/api/middleware"
	"zembil/internal/delivery/api/response"
	domainerrors "zembil/internal/domain/errors"
	"zembil/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProductHandler serves product listings, discovery and uploads.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// ListProducts returns one page of products in ID order.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, err := h.productUC.ListProducts(c.Request().Context(), pageRequest(c, h.cfg))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

// ListTrending pages products ordered by the s query parameter ("latest" or "popular").
func (h *ProductHandler) ListTrending(c echo.Context) error {
	page, err := h.productUC.ListTrendingProducts(c.Request().Context(), c.QueryParam("s"), pageRequest(c, h.cfg))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

// CreateProduct lists a product in one of the caller's shops and notifies followers.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.CreateProductInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// GetProduct returns the product together with its rating.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, detail)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateProductInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), userID, id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Product deleted.")
}

// UploadImage stores the multipart file as the product image.
func (h *ProductHandler) UploadImage(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id", domainerrors.ErrProductNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	err = withUpload(c, func(upload *usecase.UploadInput) error {
		product, err := h.productUC.UploadProductImage(c.Request().Context(), userID, id, upload)
		if err != nil {
			return err
		}

		return response.Created(c, product)
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return nil
}

// SearchProducts matches products by name and category. No match is a 404.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	input := &usecase.SearchInput{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
	}

	products, err := h.productUC.SearchProducts(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// FilterProducts returns products priced within [minPrice, maxPrice].
func (h *ProductHandler) FilterProducts(c echo.Context) error {
	minPrice, err := optionalFloat(c, "minPrice")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	maxPrice, err := optionalFloat(c, "maxPrice")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.FilterProducts(c.Request().Context(), &usecase.PriceFilterInput{
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}
