package entity

// DailyForecast is one day of the multi-day forecast shown on the weather
// screen, aggregated from the provider's 3-hourly slots.
type DailyForecast struct {
	Date      string  `json:"date"`
	MinTemp   float64 `json:"min_temp"`
	MaxTemp   float64 `json:"max_temp"`
	Condition string  `json:"condition"`
	Icon      string  `json:"icon"`
}
