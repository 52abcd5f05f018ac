package handler

import (
	"strconv"

	"fieldtofork/internal/usecase"
	"fieldtofork/pkg/errors"
	"fieldtofork/pkg/response"

	"github.com/labstack/echo/v4"
)

type WeatherHandler struct {
	weatherUseCase *usecase.WeatherUseCase
}

func NewWeatherHandler(weatherUseCase *usecase.WeatherUseCase) *WeatherHandler {
	return &WeatherHandler{
		weatherUseCase: weatherUseCase,
	}
}

func (h *WeatherHandler) Forecast(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid lat parameter", err))
	}

	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid lon parameter", err))
	}

	forecast, err := h.weatherUseCase.Forecast(c.Request().Context(), lat, lon)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, forecast)
}
