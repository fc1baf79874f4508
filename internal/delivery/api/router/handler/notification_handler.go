package handler

import (
	"zembil/internal/delivery/api/middleware"
	"zembil/internal/delivery/api/response"
	"zembil/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the caller's in-app notifications.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(notificationUC usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// ListNotifications returns the caller's notifications. Reading marks them seen.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, notifications)
}

func (h *NotificationHandler) ClearNotifications(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.ClearNotifications(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Notifications cleared.")
}
