package router

import (
	"fieldtofork/internal/adapter/api/handler"
	"fieldtofork/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chats := e.Group("/v1/chats")
	chats.Use(authMiddleware.Authenticate)

	chats.POST("", chatHandler.OpenThread)
	chats.GET("", chatHandler.ListThreads)
	chats.GET("/:id/messages", chatHandler.ListMessages)
	chats.POST("/:id/messages", chatHandler.SendMessage)
	chats.POST("/:id/typing", chatHandler.Typing)
	chats.DELETE("/:id/messages/:messageId", chatHandler.DeleteMessage)
}
