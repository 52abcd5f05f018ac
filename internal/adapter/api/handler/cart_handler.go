package handler

import (
	"fieldtofork/internal/usecase"
	"fieldtofork/pkg/response"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	uid := c.Get("uid").(string)

	cart, err := h.cartUseCase.GetCart(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	cart, err := h.cartUseCase.AddToCart(c.Request().Context(), uid, req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	cart, err := h.cartUseCase.UpdateQuantity(c.Request().Context(), uid, c.Param("productId"), req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	uid := c.Get("uid").(string)

	cart, err := h.cartUseCase.RemoveFromCart(c.Request().Context(), uid, c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.cartUseCase.ClearCart(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Cart cleared",
	})
}

func (h *CartHandler) ListFavorites(c echo.Context) error {
	uid := c.Get("uid").(string)

	favorites, err := h.cartUseCase.ListFavorites(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, favorites)
}

type addFavoriteRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (h *CartHandler) AddFavorite(c echo.Context) error {
	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	favorites, err := h.cartUseCase.AddFavorite(c.Request().Context(), uid, req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, favorites)
}

func (h *CartHandler) RemoveFavorite(c echo.Context) error {
	uid := c.Get("uid").(string)

	favorites, err := h.cartUseCase.RemoveFavorite(c.Request().Context(), uid, c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, favorites)
}
