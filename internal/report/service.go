package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seaward/tidecast/internal/marine"
	"github.com/seaward/tidecast/internal/models"
	"github.com/seaward/tidecast/internal/normalize"
	"github.com/seaward/tidecast/internal/timezone"
)

// Service drives one orchestration pass: resolve timezone, fetch both
// feeds concurrently, normalize, score, recommend, compose.
type Service struct {
	tides    TideFetcher
	weather  WeatherFetcher
	resolver *timezone.Resolver
	now      func() time.Time
}

func NewService(tides TideFetcher, weather WeatherFetcher, resolver *timezone.Resolver) *Service {
	return &Service{
		tides:    tides,
		weather:  weather,
		resolver: resolver,
		now:      time.Now,
	}
}

// GetReport assembles the full report for a coordinate. tzOverride, when
// non-empty, replaces the longitude-based timezone approximation. Unknown
// timezone names fall back to UTC. The two feed fetches run concurrently
// and both are joined before proceeding; a tide failure aborts the
// request, a weather failure degrades to empty weather data.
func (s *Service) GetReport(ctx context.Context, lat, lon float64, tzOverride string) (*models.Report, error) {
	tzName := tzOverride
	if tzName == "" {
		tzName = s.resolver.Resolve(lat, lon)
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Warn().Str("timezone", tzName).Msg("Unknown timezone, falling back to UTC")
		loc = time.UTC
	}

	var (
		wg          sync.WaitGroup
		tideFeed    models.TideFeed
		tideErr     error
		weatherFeed models.WeatherFeed
		weatherErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		tideFeed, tideErr = s.tides.Fetch(ctx, lat, lon)
	}()
	go func() {
		defer wg.Done()
		weatherFeed, weatherErr = s.weather.Fetch(ctx, lat, lon)
	}()
	wg.Wait()

	if tideErr != nil {
		return nil, fmt.Errorf("fetching tide data: %w", tideErr)
	}
	if weatherErr != nil {
		log.Warn().Err(weatherErr).Msg("Weather fetch failed, continuing with empty weather data")
		weatherFeed = models.WeatherFeed{}
	}

	now := s.now().In(loc)
	tideState := normalize.Tide(tideFeed, loc, now)
	weatherState := normalize.Weather(weatherFeed, loc)
	conditions := marine.Assess(weatherState, tideState)
	recommendation := marine.Recommend(tideState, weatherState, conditions)

	var locationName string
	if weatherState.Current != nil {
		locationName = weatherState.Current.LocationName
	}

	return &models.Report{
		Lat:              lat,
		Lon:              lon,
		LocationName:     locationName,
		NextTides:        tideState.NextTides,
		DailySummary:     tideState.DailySummary,
		Weather:          weatherState,
		MarineConditions: conditions,
		Recommendations:  recommendation,
		LastUpdated:      s.now().UTC().Format(time.RFC3339),
	}, nil
}
