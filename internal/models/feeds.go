package models

// TideFeed is the raw WorldTides extremes response, limited to the fields
// consumed downstream.
type TideFeed struct {
	Status   int          `json:"status"`
	Extremes []RawExtreme `json:"extremes"`
}

// RawExtreme is one row of the upstream extremes list.
type RawExtreme struct {
	Date   string  `json:"date"` // ISO-8601
	Type   string  `json:"type"` // "High"/"Low", case not guaranteed
	Height float64 `json:"height"`
}

// WeatherFeed combines the two OpenWeather calls into the single payload
// that gets cached. A nil part means that sub-call failed or was skipped.
type WeatherFeed struct {
	Current  *RawCurrentWeather `json:"current,omitempty"`
	Forecast *RawForecast       `json:"forecast,omitempty"`
}

// Empty reports whether the feed carries no data at all, as returned when
// the weather credential is not configured.
func (f WeatherFeed) Empty() bool {
	return f.Current == nil && f.Forecast == nil
}

// RawCurrentWeather is the raw OpenWeather current-conditions response.
// Visibility is meters; a missing field stays nil.
type RawCurrentWeather struct {
	Weather    []RawCondition `json:"weather"`
	Main       RawMain        `json:"main"`
	Visibility *float64       `json:"visibility,omitempty"`
	Wind       RawWind        `json:"wind"`
	Name       string         `json:"name"`
}

type RawCondition struct {
	Description string `json:"description"`
}

type RawMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

type RawWind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

// RawForecast is the raw OpenWeather forecast response.
type RawForecast struct {
	List []RawForecastEntry `json:"list"`
}

type RawForecastEntry struct {
	Dt      int64            `json:"dt"` // unix seconds
	Weather []RawCondition   `json:"weather"`
	Main    RawMain          `json:"main"`
	Wind    RawWind          `json:"wind"`
	Rain    *RawAccumulation `json:"rain,omitempty"`
	Snow    *RawAccumulation `json:"snow,omitempty"`
}

// RawAccumulation is the rain/snow accumulation block.
type RawAccumulation struct {
	ThreeHour float64 `json:"3h"`
}
