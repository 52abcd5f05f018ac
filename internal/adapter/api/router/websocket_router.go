package router

import (
	"fieldtofork/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupWebSocketRouter(e *echo.Echo) {
	webSocketHandler := handler.GetWebSocketHandler()

	e.GET("/ws", webSocketHandler.Connect)
}
