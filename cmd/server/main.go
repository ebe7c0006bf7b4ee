package main

import (
	"github.com/rs/zerolog/log"

	"github.com/seaward/tidecast/internal/api"
	"github.com/seaward/tidecast/internal/cache"
	"github.com/seaward/tidecast/internal/config"
	"github.com/seaward/tidecast/internal/feeds"
	"github.com/seaward/tidecast/internal/report"
	"github.com/seaward/tidecast/internal/timezone"
	"github.com/seaward/tidecast/pkg/http/client"
)

func main() {
	cfg := config.LoadFromEnv()
	cfg.InitializeLogging()

	ttlCache := cache.New(cfg.CacheTTL)

	tideClient := feeds.NewTideClient(client.New(client.Options{
		BaseURL: cfg.TidesBaseURL,
		Timeout: cfg.HTTPTimeout,
	}), ttlCache, cfg.TidesAPIKey)

	weatherClient := feeds.NewWeatherClient(client.New(client.Options{
		BaseURL: cfg.WeatherBaseURL,
		Timeout: cfg.HTTPTimeout,
	}), ttlCache, cfg.WeatherAPIKey)

	reports := report.NewService(tideClient, weatherClient, timezone.NewResolver())
	handler := api.NewHandler(reports, ttlCache, tideClient, weatherClient)
	router := api.SetupRouter(handler)

	log.Info().
		Str("port", cfg.Port).
		Bool("tides_configured", tideClient.Configured()).
		Bool("weather_configured", weatherClient.Configured()).
		Msg("Starting tidecast server")

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server exited")
	}
}
