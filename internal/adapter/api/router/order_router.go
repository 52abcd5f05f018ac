package router

import (
	"fieldtofork/internal/adapter/api/handler"
	"fieldtofork/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)

	orders.POST("/checkout", orderHandler.Checkout)
	orders.GET("", orderHandler.ListMyOrders)
	orders.GET("/seller", orderHandler.ListSellerOrders)
	orders.GET("/:id/track", orderHandler.TrackOrder)
	orders.POST("/:id/advance", orderHandler.AdvanceStatus)
	orders.GET("/payment-link", orderHandler.PaymentLink)
	orders.POST("/:id/payment-callback", orderHandler.PaymentCallback)
}
