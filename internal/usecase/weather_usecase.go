package usecase

import (
	"context"

	"fieldtofork/internal/domain/entity"
)

type WeatherUseCase struct {
	provider ForecastProvider
}

func NewWeatherUseCase(provider ForecastProvider) *WeatherUseCase {
	return &WeatherUseCase{
		provider: provider,
	}
}

func (uc *WeatherUseCase) Forecast(ctx context.Context, lat, lon float64) ([]entity.DailyForecast, error) {
	return uc.provider.Forecast(ctx, lat, lon)
}
