package router

import (
	"fieldtofork/internal/adapter/api/handler"
	"fieldtofork/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.Authenticate)

	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddToCart)
	cart.PUT("/items/:productId", cartHandler.UpdateQuantity)
	cart.DELETE("/items/:productId", cartHandler.RemoveFromCart)
	cart.DELETE("", cartHandler.ClearCart)

	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)

	favorites.GET("", cartHandler.ListFavorites)
	favorites.POST("", cartHandler.AddFavorite)
	favorites.DELETE("/:productId", cartHandler.RemoveFavorite)
}
