package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"github.com/seaward/tidecast/internal/cache"
	"github.com/seaward/tidecast/internal/models"
	"github.com/seaward/tidecast/pkg/http/client"
)

const (
	WeatherFeedName = "weather"

	currentWeatherPath = "/data/2.5/weather"
	forecastPath       = "/data/2.5/forecast"

	// 8 forecast points at 3-hour spacing covers the next 24 hours.
	forecastCount = 8
)

// WeatherClient fetches current conditions and the short forecast from
// OpenWeather and composes them into one cached payload. Weather is
// enrichment: with no credential it returns an empty payload without
// calling upstream or touching the cache, and a failed sub-call yields an
// empty part instead of failing the fetch.
type WeatherClient struct {
	httpClient client.Interface
	cache      *cache.TTLCache
	apiKey     string
	breaker    *gobreaker.CircuitBreaker
}

func NewWeatherClient(httpClient client.Interface, ttlCache *cache.TTLCache, apiKey string) *WeatherClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        WeatherFeedName,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &WeatherClient{
		httpClient: httpClient,
		cache:      ttlCache,
		apiKey:     apiKey,
		breaker:    breaker,
	}
}

// Configured reports whether a credential is present.
func (c *WeatherClient) Configured() bool {
	return c.apiKey != ""
}

// Fetch returns the combined current+forecast payload for a coordinate.
// The error return is always nil; weather failures degrade locally.
func (c *WeatherClient) Fetch(ctx context.Context, lat, lon float64) (models.WeatherFeed, error) {
	if c.apiKey == "" {
		return models.WeatherFeed{}, nil
	}

	key := cache.Key(WeatherFeedName, lat, lon)
	if payload, ok := c.cache.Get(key); ok {
		if feed, ok := payload.(models.WeatherFeed); ok {
			log.Debug().Str("key", key).Msg("Cache HIT for weather feed")
			return feed, nil
		}
	}
	log.Debug().Str("key", key).Msg("Cache MISS for weather feed, calling OpenWeather API")

	var feed models.WeatherFeed

	var current models.RawCurrentWeather
	if err := c.getJSON(ctx, currentWeatherPath, c.params(lat, lon, false), &current); err != nil {
		log.Warn().Err(err).Msg("Current weather sub-call failed, continuing without it")
	} else {
		feed.Current = &current
	}

	var forecast models.RawForecast
	if err := c.getJSON(ctx, forecastPath, c.params(lat, lon, true), &forecast); err != nil {
		log.Warn().Err(err).Msg("Forecast sub-call failed, continuing without it")
	} else {
		feed.Forecast = &forecast
	}

	// Both sub-calls failing counts as a failed fetch and is not cached.
	if feed.Empty() {
		return feed, nil
	}

	c.cache.Put(key, feed)
	return feed, nil
}

func (c *WeatherClient) params(lat, lon float64, forecast bool) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	if forecast {
		params.Set("cnt", strconv.Itoa(forecastCount))
	}
	return params
}

// getJSON runs one sub-call through the circuit breaker and decodes the
// body. A tripped breaker surfaces like any other failed sub-call.
func (c *WeatherClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Get(ctx, path+"?"+params.Encode())
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, &UpstreamError{Feed: WeatherFeedName, StatusCode: resp.StatusCode}
		}
		return resp, nil
	})
	if err != nil {
		return err
	}

	resp, ok := result.(*client.Response)
	if !ok {
		return fmt.Errorf("unexpected result type from circuit breaker")
	}

	return json.Unmarshal(resp.Body, out)
}
