package router

import (
	"fieldtofork/internal/adapter/api/handler"
	"fieldtofork/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/products/:id/reviews", reviewHandler.ListReviews)

	protected := e.Group("/v1/products/:id/reviews")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("", reviewHandler.SubmitReview)
}
