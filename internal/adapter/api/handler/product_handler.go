package handler

import (
	"fieldtofork/internal/usecase"
	"fieldtofork/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Location    string `json:"location"`
	ImageURL    string `json:"image_url"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), sellerID, usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, sellerID, usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")
	sellerID := c.Get("uid").(string)

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), id, sellerID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product deleted successfully",
	})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	products, err := h.productUseCase.ListMyProducts(c.Request().Context(), sellerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) Catalog(c echo.Context) error {
	grouped, err := h.productUseCase.Catalog(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, grouped)
}

func (h *ProductHandler) Search(c echo.Context) error {
	var uid string
	if v, ok := c.Get("uid").(string); ok {
		uid = v
	}

	products, err := h.productUseCase.Search(c.Request().Context(), uid, c.QueryParam("q"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) Suggest(c echo.Context) error {
	products, err := h.productUseCase.Suggest(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) SearchHistory(c echo.Context) error {
	uid := c.Get("uid").(string)

	history, err := h.productUseCase.SearchHistory(uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, history)
}
