package router

import (
	"fieldtofork/internal/adapter/api/handler"
	"fieldtofork/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupNotificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	notificationHandler := handler.GetNotificationHandler()

	notifications := e.Group("/v1/notifications")
	notifications.Use(authMiddleware.Authenticate)

	notifications.GET("", notificationHandler.List)
	notifications.GET("/unread-count", notificationHandler.UnreadCount)
	notifications.PUT("/:id/read", notificationHandler.MarkRead)
	notifications.DELETE("/:id", notificationHandler.Delete)
}
