package handler

import (
	"net/http"
	"testing"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	usecasemocks "zembil/internal/mocks/usecase"
	"zembil/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWishList(t *testing.T) {
	wishListUC := usecasemocks.NewMockWishListUsecase(t)
	h := NewWishListHandler(wishListUC)

	e := newTestEcho()
	user := asCaller(7, entity.RoleUser)
	e.GET("/cart", h.ListItems, user)
	e.POST("/cart", h.AddItem, user)
	e.DELETE("/cart/:id", h.DeleteItem, user)

	t.Run("add", func(t *testing.T) {
		wishListUC.EXPECT().AddItem(mock.Anything, uint(7), &usecase.AddWishListItemInput{ProductID: 42}).
			Return(&entity.WishListItem{ID: 1, UserID: 7, ProductID: 42}, nil).Once()

		rec := serve(e, http.MethodPost, "/cart", `{"productId":42}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		wishListUC.EXPECT().AddItem(mock.Anything, uint(7), &usecase.AddWishListItemInput{ProductID: 43}).
			Return(nil, domainerrors.ErrDuplicateWishListItem).Once()

		rec := serve(e, http.MethodPost, "/cart", `{"productId":43}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing product id", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/cart", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Details, "productId")
	})

	t.Run("list", func(t *testing.T) {
		wishListUC.EXPECT().ListItems(mock.Anything, uint(7)).
			Return([]*entity.WishListItem{{ID: 1}}, nil).Once()

		rec := serve(e, http.MethodGet, "/cart", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete someone else's item", func(t *testing.T) {
		wishListUC.EXPECT().DeleteItem(mock.Anything, uint(7), uint(9)).Return(domainerrors.ErrForbidden).Once()

		rec := serve(e, http.MethodDelete, "/cart/9", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
