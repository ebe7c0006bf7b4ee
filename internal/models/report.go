package models

type TideType string

const (
	TideTypeHigh TideType = "High"
	TideTypeLow  TideType = "Low"
)

// TideExtreme is a single high or low tide event, rendered in the
// report's target timezone. Read-only after normalization.
type TideExtreme struct {
	Type         TideType `json:"type"`
	Height       float64  `json:"height"`
	Time         string   `json:"time"`
	RelativeTime string   `json:"relative_time"`
}

// DailySummary aggregates the extremes falling on the current local day.
type DailySummary struct {
	HighTidesCount int     `json:"high_tides_count"`
	LowTidesCount  int     `json:"low_tides_count"`
	MaxHeight      float64 `json:"max_height"`
	MinHeight      float64 `json:"min_height"`
}

// TideState is the canonical tide representation for one coordinate.
type TideState struct {
	NextTides    []TideExtreme `json:"next_tides"`
	DailySummary DailySummary  `json:"daily_summary"`
}

// CurrentConditions is the normalized current weather snapshot.
// Visibility is in kilometers and absent when the upstream omits it.
type CurrentConditions struct {
	Condition     string   `json:"condition"`
	Temperature   float64  `json:"temperature"`
	FeelsLike     float64  `json:"feels_like"`
	Humidity      int      `json:"humidity"`
	Pressure      int      `json:"pressure"`
	Visibility    *float64 `json:"visibility,omitempty"`
	WindSpeed     float64  `json:"wind_speed"`
	WindDirection float64  `json:"wind_direction"`
	LocationName  string   `json:"location_name"`
}

// ForecastPoint is one normalized forecast step (~3h spacing upstream).
type ForecastPoint struct {
	Time          string  `json:"time"`
	Condition     string  `json:"condition"`
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"wind_speed"`
	Precipitation float64 `json:"precipitation"`
}

// WeatherState is the canonical weather representation. Both fields are
// empty when the weather feed is unavailable or unconfigured.
type WeatherState struct {
	Current  *CurrentConditions `json:"current,omitempty"`
	Forecast []ForecastPoint    `json:"forecast,omitempty"`
}

// ActivityScores holds the 0-10 suitability rating per activity.
type ActivityScores struct {
	Swimming int `json:"swimming"`
	Surfing  int `json:"surfing"`
	Fishing  int `json:"fishing"`
	Boating  int `json:"boating"`
}

// MarineConditions is the scored view of the current state. Suitability is
// nil and OverallRating is "Unknown" when no current weather is available.
type MarineConditions struct {
	OverallRating string          `json:"overall_rating"`
	Suitability   *ActivityScores `json:"suitability,omitempty"`
	Warnings      []string        `json:"warnings"`
}

// Recommendation is the synthesized best-activity verdict.
type Recommendation struct {
	BestActivity string   `json:"best_activity"`
	BestTime     string   `json:"best_time"`
	Tips         []string `json:"tips"`
}

// Report is the full composed response for one coordinate. It is assembled
// fresh per request and never persisted.
type Report struct {
	Lat              float64          `json:"lat"`
	Lon              float64          `json:"lon"`
	LocationName     string           `json:"location_name"`
	NextTides        []TideExtreme    `json:"next_tides"`
	DailySummary     DailySummary     `json:"daily_summary"`
	Weather          WeatherState     `json:"weather"`
	MarineConditions MarineConditions `json:"marine_conditions"`
	Recommendations  Recommendation   `json:"recommendations"`
	LastUpdated      string           `json:"last_updated"`
}
