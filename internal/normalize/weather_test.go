package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaward/tidecast/internal/models"
)

func float64Ptr(v float64) *float64 { return &v }

func testWeatherFeed() models.WeatherFeed {
	return models.WeatherFeed{
		Current: &models.RawCurrentWeather{
			Weather:    []models.RawCondition{{Description: "scattered clouds"}},
			Main:       models.RawMain{Temp: 22.34, FeelsLike: 23.06, Humidity: 65, Pressure: 1013},
			Visibility: float64Ptr(8000),
			Wind:       models.RawWind{Speed: 6.2, Deg: 210},
			Name:       "Provincetown",
		},
		Forecast: &models.RawForecast{
			List: []models.RawForecastEntry{
				{
					Dt:      time.Date(2025, 6, 15, 15, 0, 0, 0, time.UTC).Unix(),
					Weather: []models.RawCondition{{Description: "light rain"}},
					Main:    models.RawMain{Temp: 21.96},
					Wind:    models.RawWind{Speed: 7.1},
					Rain:    &models.RawAccumulation{ThreeHour: 0.5},
				},
				{Dt: time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC).Unix(), Snow: &models.RawAccumulation{ThreeHour: 0.2}},
				{Dt: time.Date(2025, 6, 15, 21, 0, 0, 0, time.UTC).Unix()},
				{Dt: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC).Unix()},
				{Dt: time.Date(2025, 6, 16, 3, 0, 0, 0, time.UTC).Unix()},
				{Dt: time.Date(2025, 6, 16, 6, 0, 0, 0, time.UTC).Unix()},
			},
		},
	}
}

func TestWeatherNormalization(t *testing.T) {
	t.Parallel()

	state := Weather(testWeatherFeed(), time.UTC)

	require.NotNil(t, state.Current)
	current := state.Current

	assert.Equal(t, "Scattered Clouds", current.Condition)
	assert.Equal(t, 22.3, current.Temperature) // rounded to 1 decimal place
	assert.Equal(t, 23.1, current.FeelsLike)
	assert.Equal(t, 65, current.Humidity)
	assert.Equal(t, 1013, current.Pressure)
	require.NotNil(t, current.Visibility)
	assert.Equal(t, 8.0, *current.Visibility) // meters to kilometers
	assert.Equal(t, 6.2, current.WindSpeed)
	assert.Equal(t, 210.0, current.WindDirection)
	assert.Equal(t, "Provincetown", current.LocationName)
}

func TestWeatherForecastNormalization(t *testing.T) {
	t.Parallel()

	state := Weather(testWeatherFeed(), time.UTC)

	// Capped at the first 4 entries
	require.Len(t, state.Forecast, 4)

	first := state.Forecast[0]
	assert.Equal(t, "15:00", first.Time)
	assert.Equal(t, "Light Rain", first.Condition)
	assert.Equal(t, 22.0, first.Temperature)
	assert.Equal(t, 7.1, first.WindSpeed)
	assert.Equal(t, 0.5, first.Precipitation)

	// Precipitation sums rain and snow, missing parts default to 0
	assert.Equal(t, 0.2, state.Forecast[1].Precipitation)
	assert.Equal(t, 0.0, state.Forecast[2].Precipitation)

	// Missing condition blocks default to empty
	assert.Equal(t, "", state.Forecast[1].Condition)
}

func TestWeatherVisibilityAbsent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		visibility *float64
	}{
		{name: "field missing", visibility: nil},
		{name: "zero means no data", visibility: float64Ptr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := models.WeatherFeed{
				Current: &models.RawCurrentWeather{Visibility: tt.visibility},
			}

			state := Weather(feed, time.UTC)

			require.NotNil(t, state.Current)
			assert.Nil(t, state.Current.Visibility)
		})
	}
}

func TestWeatherEmptyFeed(t *testing.T) {
	t.Parallel()

	state := Weather(models.WeatherFeed{}, time.UTC)

	assert.Nil(t, state.Current)
	assert.Empty(t, state.Forecast)
}

func TestWeatherIdempotence(t *testing.T) {
	t.Parallel()

	first := Weather(testWeatherFeed(), time.UTC)
	second := Weather(testWeatherFeed(), time.UTC)

	assert.Equal(t, first, second)
}
