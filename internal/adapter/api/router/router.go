package router

import (
	"fieldtofork/internal/adapter/api/middleware"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, authClient *auth.Client) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware, authClient)
	SetupReviewRouter(e, authMiddleware)
	SetupCartRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupWeatherRouter(e)
	SetupFileRouter(e, authMiddleware)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)
}
