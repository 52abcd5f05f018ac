package handler

import (
	"fieldtofork/internal/domain/entity"
	"fieldtofork/internal/usecase"
	"fieldtofork/pkg/response"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type updateProfileRequest struct {
	Username        string `json:"username"`
	Phone           string `json:"phone"`
	ProfileImageURL string `json:"profile_image_url"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Username:        req.Username,
		Phone:           req.Phone,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type updatePaymentMethodRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
}

func (h *UserHandler) UpdatePaymentMethod(c echo.Context) error {
	var req updatePaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdatePaymentMethod(c.Request().Context(), uid, req.PaymentMethod)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type updateDefaultAddressRequest struct {
	Address string `json:"address" validate:"required"`
}

func (h *UserHandler) UpdateDefaultAddress(c echo.Context) error {
	var req updateDefaultAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateDefaultAddress(c.Request().Context(), uid, req.Address)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type updateShippingAddressRequest struct {
	FormattedAddress string  `json:"formatted_address" validate:"required"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

func (h *UserHandler) UpdateShippingAddress(c echo.Context) error {
	var req updateShippingAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateShippingAddress(c.Request().Context(), uid, entity.ShippingAddress{
		FormattedAddress: req.FormattedAddress,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetLanguage(c echo.Context) error {
	uid := c.Get("uid").(string)

	lang, err := h.userUseCase.Language(uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"language": lang})
}

type setLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}

func (h *UserHandler) SetLanguage(c echo.Context) error {
	var req setLanguageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	if err := h.userUseCase.SetLanguage(uid, req.Language); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"language": req.Language})
}
