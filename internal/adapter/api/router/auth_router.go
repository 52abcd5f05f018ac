package router

import (
	"fieldtofork/internal/adapter/api/handler"
	"fieldtofork/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/forgot-password", authHandler.ForgotPassword)

	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", authHandler.Me)
	protected.DELETE("/account", authHandler.DeleteAccount)
}
