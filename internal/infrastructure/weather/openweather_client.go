package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/pkg/errors"
)

const forecastEndpoint = "https://api.openweathermap.org/data/2.5/forecast"

// Client fetches the 5-day / 3-hour forecast and folds it into daily
// summaries for the weather screen.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type forecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
}

func (c *Client) Forecast(ctx context.Context, lat, lon float64) ([]entity.DailyForecast, error) {
	url := fmt.Sprintf("%s?lat=%f&lon=%f&units=metric&appid=%s", forecastEndpoint, lat, lon, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Internal("Failed to build forecast request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Internal("Failed to fetch forecast", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Internal(fmt.Sprintf("Forecast provider returned %d", resp.StatusCode), nil)
	}

	var raw forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errors.Internal("Failed to decode forecast", err)
	}

	return foldDaily(raw), nil
}

// foldDaily collapses 3-hourly slots into per-day min/max, keeping the first
// slot's condition and icon as the day's representative weather.
func foldDaily(raw forecastResponse) []entity.DailyForecast {
	var days []entity.DailyForecast
	index := map[string]int{}

	for _, slot := range raw.List {
		if len(slot.DtTxt) < 10 {
			continue
		}
		date := slot.DtTxt[:10]

		i, ok := index[date]
		if !ok {
			day := entity.DailyForecast{
				Date:    date,
				MinTemp: slot.Main.TempMin,
				MaxTemp: slot.Main.TempMax,
			}
			if len(slot.Weather) > 0 {
				day.Condition = slot.Weather[0].Description
				day.Icon = slot.Weather[0].Icon
			}
			index[date] = len(days)
			days = append(days, day)
			continue
		}

		if slot.Main.TempMin < days[i].MinTemp {
			days[i].MinTemp = slot.Main.TempMin
		}
		if slot.Main.TempMax > days[i].MaxTemp {
			days[i].MaxTemp = slot.Main.TempMax
		}
	}

	return days
}
