package normalize

import (
	"math"
	"strings"
	"time"

	"github.com/seaward/tidecast/internal/models"
)

const (
	// First 4 forecast entries cover ~12 hours at 3-hour spacing.
	forecastLimit = 4

	forecastTimeLayout = "15:04"
)

// Weather converts the raw combined feed into canonical weather state.
// Missing parts stay empty; missing fields default to their zero values.
func Weather(feed models.WeatherFeed, loc *time.Location) models.WeatherState {
	var state models.WeatherState

	if feed.Current != nil {
		state.Current = normalizeCurrent(feed.Current)
	}
	if feed.Forecast != nil {
		state.Forecast = normalizeForecast(feed.Forecast, loc)
	}

	return state
}

func normalizeCurrent(raw *models.RawCurrentWeather) *models.CurrentConditions {
	current := &models.CurrentConditions{
		Condition:     title(firstDescription(raw.Weather)),
		Temperature:   round1(raw.Main.Temp),
		FeelsLike:     round1(raw.Main.FeelsLike),
		Humidity:      raw.Main.Humidity,
		Pressure:      raw.Main.Pressure,
		WindSpeed:     raw.Wind.Speed,
		WindDirection: raw.Wind.Deg,
		LocationName:  raw.Name,
	}

	// Meters to kilometers; a missing or zero source field means no
	// visibility data.
	if raw.Visibility != nil && *raw.Visibility != 0 {
		km := *raw.Visibility / 1000
		current.Visibility = &km
	}

	return current
}

func normalizeForecast(raw *models.RawForecast, loc *time.Location) []models.ForecastPoint {
	points := make([]models.ForecastPoint, 0, forecastLimit)

	for _, entry := range raw.List {
		if len(points) >= forecastLimit {
			break
		}

		points = append(points, models.ForecastPoint{
			Time:          time.Unix(entry.Dt, 0).In(loc).Format(forecastTimeLayout),
			Condition:     title(firstDescription(entry.Weather)),
			Temperature:   round1(entry.Main.Temp),
			WindSpeed:     entry.Wind.Speed,
			Precipitation: accumulation(entry.Rain) + accumulation(entry.Snow),
		})
	}

	return points
}

func firstDescription(conditions []models.RawCondition) string {
	if len(conditions) == 0 {
		return ""
	}
	return conditions[0].Description
}

func accumulation(a *models.RawAccumulation) float64 {
	if a == nil {
		return 0
	}
	return a.ThreeHour
}

// title capitalizes the first letter of each space-separated word, the way
// the feed descriptions ("scattered clouds") are displayed.
func title(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
