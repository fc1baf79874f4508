package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"zembil/internal/domain/entity"
	domainerrors "zembil/internal/domain/errors"
	usecasemocks "zembil/internal/mocks/usecase"
	"zembil/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeviceHandler(t *testing.T) {
	deviceUC := usecasemocks.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	user := asCaller(7, entity.RoleUser)
	e.POST("/users/devices", h.RegisterDevice, user)
	e.PUT("/users/devices/:id/token", h.UpdateFCMToken, user)
	e.DELETE("/users/devices/:id", h.DeleteDevice, user)

	t.Run("register", func(t *testing.T) {
		deviceUC.EXPECT().
			RegisterDevice(mock.Anything, uint(7), &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "pixel-8", Platform: "android"}).
			Return(&entity.UserDevice{ID: 1, UserID: 7, FCMToken: "tok"}, nil).Once()

		rec := serve(e, http.MethodPost, "/users/devices", `{"fcmToken":"tok","deviceId":"pixel-8","platform":"android"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown platform", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/users/devices", `{"fcmToken":"tok","deviceId":"pc","platform":"windows"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Value must be one of: ios android.", decode(t, rec).Error.Details["platform"])
	})

	t.Run("update token of another user's device", func(t *testing.T) {
		deviceUC.EXPECT().UpdateFCMToken(mock.Anything, uint(7), uint(3), "new").Return(domainerrors.ErrForbidden).Once()

		rec := serve(e, http.MethodPut, "/users/devices/3/token", `{"fcmToken":"new"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		deviceUC.EXPECT().DeleteDevice(mock.Anything, uint(7), uint(3)).Return(nil).Once()

		rec := serve(e, http.MethodDelete, "/users/devices/3", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
