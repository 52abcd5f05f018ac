package router

import (
	"fieldtofork/internal/adapter/api/handler"
	"fieldtofork/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	profile := e.Group("/v1/profile")
	profile.Use(authMiddleware.Authenticate)

	profile.GET("", userHandler.GetProfile)
	profile.PUT("", userHandler.UpdateProfile)
	profile.PUT("/payment-method", userHandler.UpdatePaymentMethod)
	profile.PUT("/default-address", userHandler.UpdateDefaultAddress)
	profile.PUT("/shipping-address", userHandler.UpdateShippingAddress)
	profile.GET("/language", userHandler.GetLanguage)
	profile.PUT("/language", userHandler.SetLanguage)
}
