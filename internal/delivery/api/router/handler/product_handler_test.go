package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	usecasemocks "zembil/internal/mocks/usecase"
	"zembil/internal/usecase"
	"zembil/internal/usecase/pagination"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductTest(t *testing.T) (*usecasemocks.MockProductUsecase, *echo.Echo) {
	productUC := usecasemocks.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{
		ProductUC: productUC,
		Config:    testConfig(),
		Logger:    slog.New(slog.DiscardHandler),
	})

	e := newTestEcho()
	e.GET("/products", h.ListProducts)
	e.POST("/products", h.CreateProduct, asCaller(7, entity.RoleUser))
	e.GET("/products/trending", h.ListTrending)
	e.GET("/products/:id", h.GetProduct)
	e.PATCH("/products/:id", h.UpdateProduct, asCaller(7, entity.RoleUser))
	e.POST("/products/:id/uploads", h.UploadImage, asCaller(7, entity.RoleUser))
	e.GET("/filter/products", h.FilterProducts)
	e.GET("/search/products", h.SearchProducts)

	return productUC, e
}

func TestListProducts_PageRequest(t *testing.T) {
	productUC, e := newProductTest(t)

	next := "http://example.com/products?limit=100&page=3"
	productUC.EXPECT().
		ListProducts(mock.Anything, mock.MatchedBy(func(req pagination.Request) bool {
			return req.Page == 2 && req.Limit == 100 && req.URL.Host == "example.com"
		})).
		Return(&pagination.Page[*entity.Product]{
			Results: []*entity.Product{{ID: 101}},
			Next:    &next,
			Count:   250,
		}, nil)

	rec := serve(e, http.MethodGet, "/products?page=2&limit=500", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var page map[string]any
	decodeData(t, rec, &page)
	assert.Equal(t, float64(250), page["count"])
	assert.Equal(t, next, page["next"])
	assert.Nil(t, page["previous"])
}

func TestListProducts_DefaultPageSize(t *testing.T) {
	productUC, e := newProductTest(t)

	productUC.EXPECT().
		ListProducts(mock.Anything, mock.MatchedBy(func(req pagination.Request) bool {
			return req.Page == 1 && req.Limit == 9
		})).
		Return(&pagination.Page[*entity.Product]{Results: []*entity.Product{}}, nil)

	rec := serve(e, http.MethodGet, "/products?page=zero", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListTrending_WithoutSortIsNotFound(t *testing.T) {
	productUC, e := newProductTest(t)

	productUC.EXPECT().ListTrendingProducts(mock.Anything, "", mock.Anything).
		Return(nil, domainerrors.ErrUnknownTrendingSort)

	rec := serve(e, http.MethodGet, "/products/trending", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "UNKNOWN_TRENDING_SORT", decode(t, rec).Error.Code)
}

func TestListTrending_Popular(t *testing.T) {
	productUC, e := newProductTest(t)

	productUC.EXPECT().ListTrendingProducts(mock.Anything, usecase.TrendingPopular, mock.Anything).
		Return(&pagination.Page[*entity.Product]{Results: []*entity.Product{{ID: 1}}, Count: 1}, nil)

	rec := serve(e, http.MethodGet, "/products/trending?s=popular", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateProduct(t *testing.T) {
	productUC, e := newProductTest(t)

	productUC.EXPECT().
		CreateProduct(mock.Anything, uint(7), mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
			return in.ShopID == 3 && in.Name == "Phone" && in.Price == 1200 && in.Stock == nil
		})).
		Return(&entity.Product{ID: 42, ShopID: 3, Name: "Phone", Price: 1200, Stock: 1}, nil)

	rec := serve(e, http.MethodPost, "/products",
		`{"shopId":3,"productName":"Phone","description":"Brand new phone","price":1200}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var product map[string]any
	decodeData(t, rec, &product)
	assert.Equal(t, float64(42), product["productId"])
	assert.Equal(t, float64(1), product["productCount"])
}

func TestCreateProduct_Validation(t *testing.T) {
	_, e := newProductTest(t)

	rec := serve(e, http.MethodPost, "/products", `{"shopId":3,"productName":"Phone","description":"new","price":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	details := decode(t, rec).Error.Details
	assert.Contains(t, details, "description")
	assert.Contains(t, details, "price")
}

func TestCreateProduct_MalformedBody(t *testing.T) {
	_, e := newProductTest(t)

	rec := serve(e, http.MethodPost, "/products", `{"shopId":"three"`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", decode(t, rec).Error.Code)
}

func TestGetProduct_IncludesRating(t *testing.T) {
	productUC, e := newProductTest(t)

	productUC.EXPECT().GetProduct(mock.Anything, uint(42)).Return(&usecase.ProductDetail{
		Product: &entity.Product{ID: 42},
		Rating:  &entity.Rating{Average: 4.5, Count: 2},
	}, nil)

	rec := serve(e, http.MethodGet, "/products/42", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"averageRating":4.5`)
	assert.Contains(t, rec.Body.String(), `"ratingcount":2`)
}

func TestUpdateProduct_Forbidden(t *testing.T) {
	productUC, e := newProductTest(t)

	productUC.EXPECT().
		UpdateProduct(mock.Anything, uint(7), uint(42), mock.MatchedBy(func(in *usecase.UpdateProductInput) bool {
			return in.Price != nil && *in.Price == 99 && in.Name == nil
		})).
		Return(nil, domainerrors.ErrNotShopOwner)

	rec := serve(e, http.MethodPatch, "/products/42", `{"price":99}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, decode(t, rec).Error.Details)
}

func TestFilterProducts(t *testing.T) {
	productUC, e := newProductTest(t)

	productUC.EXPECT().
		FilterProducts(mock.Anything, mock.MatchedBy(func(in *usecase.PriceFilterInput) bool {
			return in.MinPrice != nil && *in.MinPrice == 10 && in.MaxPrice == nil
		})).
		Return([]*entity.Product{{ID: 1, Price: 15}}, nil)

	rec := serve(e, http.MethodGet, "/filter/products?minPrice=10", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFilterProducts_NonNumeric(t *testing.T) {
	_, e := newProductTest(t)

	rec := serve(e, http.MethodGet, "/filter/products?minPrice=10&maxPrice=lots", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "A valid number is required.", decode(t, rec).Error.Details["maxPrice"])
}

func TestSearchProducts_NoResults(t *testing.T) {
	productUC, e := newProductTest(t)

	productUC.EXPECT().
		SearchProducts(mock.Anything, &usecase.SearchInput{Name: "lamp", Category: "home"}).
		Return(nil, domainerrors.ErrNoResults)

	rec := serve(e, http.MethodGet, "/search/products?name=lamp&category=home", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadProductImage(t *testing.T) {
	productUC, e := newProductTest(t)

	productUC.EXPECT().
		UploadProductImage(mock.Anything, uint(7), uint(42), mock.MatchedBy(func(in *usecase.UploadInput) bool {
			content, err := io.ReadAll(in.Content)

			return err == nil && in.Filename == "lamp.png" && in.Size == 4 && string(content) == "\x89PNG"
		})).
		Return(&entity.Product{ID: 42, ImagePath: "/media/products/42/abc-lamp.png"}, nil)

	rec := serveMultipart(t, e, "/products/42/uploads", "lamp.png", []byte("\x89PNG"))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "/media/products/42/abc-lamp.png")
}

func TestUploadProductImage_MissingFile(t *testing.T) {
	_, e := newProductTest(t)

	rec := serveMultipart(t, e, "/products/42/uploads", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_UPLOAD", decode(t, rec).Error.Code)
}
