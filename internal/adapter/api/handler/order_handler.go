package handler

import (
	"fieldtofork/internal/usecase"
	"fieldtofork/pkg/response"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type checkoutRequest struct {
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// Checkout deliberately skips struct-tag validation: the use case owns the
// exact check order and the user-facing messages.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.Checkout(c.Request().Context(), uid, usecase.CheckoutInput{
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	uid := c.Get("uid").(string)

	orders, err := h.orderUseCase.ListMine(c.Request().Context(), uid, c.QueryParam("tab"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) ListSellerOrders(c echo.Context) error {
	uid := c.Get("uid").(string)

	orders, err := h.orderUseCase.ListForSeller(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) AdvanceStatus(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.AdvanceStatus(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) TrackOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.Track(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) PaymentLink(c echo.Context) error {
	return response.Success(c, map[string]string{
		"payment_link": h.orderUseCase.PaymentLink(),
	})
}

type paymentCallbackRequest struct {
	RedirectURL string `json:"redirect_url" validate:"required"`
}

func (h *OrderHandler) PaymentCallback(c echo.Context) error {
	var req paymentCallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	outcome, err := h.orderUseCase.ConfirmCardPayment(c.Request().Context(), c.Param("id"), uid, req.RedirectURL)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"outcome": outcome,
	})
}
