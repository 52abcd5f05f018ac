package handler

import (
	"fieldtofork/internal/usecase"
	"fieldtofork/pkg/response"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)

	notifications, err := h.notificationUseCase.List(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, notifications)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	uid := c.Get("uid").(string)

	count, err := h.notificationUseCase.UnreadCount(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int64{"unread": count})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.notificationUseCase.MarkRead(c.Request().Context(), c.Param("id"), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Notification marked read",
	})
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.notificationUseCase.Delete(c.Request().Context(), c.Param("id"), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Notification deleted",
	})
}
