package weather

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldDailyCollapsesSlotsPerDay(t *testing.T) {
	payload := `{
		"list": [
			{"dt_txt": "2026-08-29 09:00:00", "main": {"temp_min": 21.0, "temp_max": 26.0},
			 "weather": [{"description": "light rain", "icon": "10d"}]},
			{"dt_txt": "2026-08-29 12:00:00", "main": {"temp_min": 19.5, "temp_max": 29.0},
			 "weather": [{"description": "scattered clouds", "icon": "03d"}]},
			{"dt_txt": "2026-08-30 09:00:00", "main": {"temp_min": 18.0, "temp_max": 24.0},
			 "weather": [{"description": "clear sky", "icon": "01d"}]}
		]
	}`

	var raw forecastResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	days := foldDaily(raw)
	require.Len(t, days, 2)

	assert.Equal(t, "2026-08-29", days[0].Date)
	assert.Equal(t, 19.5, days[0].MinTemp)
	assert.Equal(t, 29.0, days[0].MaxTemp)
	// The first slot of the day supplies the representative condition.
	assert.Equal(t, "light rain", days[0].Condition)
	assert.Equal(t, "10d", days[0].Icon)

	assert.Equal(t, "2026-08-30", days[1].Date)
	assert.Equal(t, "clear sky", days[1].Condition)
}

func TestFoldDailySkipsMalformedSlots(t *testing.T) {
	var raw forecastResponse
	require.NoError(t, json.Unmarshal([]byte(`{"list": [{"dt_txt": "bad", "main": {}}]}`), &raw))

	assert.Empty(t, foldDaily(raw))
}
