package router

import (
	"fieldtofork/internal/adapter/api/handler"
	"fieldtofork/internal/adapter/api/middleware"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, authClient *auth.Client) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.Catalog)
	products.GET("/suggest", productHandler.Suggest)
	products.GET("/:id", productHandler.GetProduct)

	search := e.Group("/v1/products/search")
	search.Use(OptionalToken(authClient))
	search.GET("", productHandler.Search)

	myProducts := e.Group("/v1/my-products")
	myProducts.Use(authMiddleware.Authenticate)
	myProducts.GET("", productHandler.ListMyProducts)
	myProducts.POST("", productHandler.CreateProduct)
	myProducts.PUT("/:id", productHandler.UpdateProduct)
	myProducts.DELETE("/:id", productHandler.DeleteProduct)

	history := e.Group("/v1/search-history")
	history.Use(authMiddleware.Authenticate)
	history.GET("", productHandler.SearchHistory)
}
