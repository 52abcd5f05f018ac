package router

import (
	"fieldtofork/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupWeatherRouter(e *echo.Echo) {
	weatherHandler := handler.GetWeatherHandler()

	e.GET("/v1/weather/forecast", weatherHandler.Forecast)
}
