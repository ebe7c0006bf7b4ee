package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Environment string
	LogLevel    zerolog.Level
	Port        string
	HTTPTimeout time.Duration

	// CacheTTL is the validity window of the shared feed cache.
	CacheTTL time.Duration

	TidesAPIKey   string
	WeatherAPIKey string

	// Base URLs are overridable mainly for tests.
	TidesBaseURL   string
	WeatherBaseURL string
}

const (
	defaultTidesBaseURL    = "https://www.worldtides.info/api/v3"
	defaultWeatherBaseURL  = "https://api.openweathermap.org"
	defaultCacheTTLSeconds = 1800
)

type Option func(*Config)

// WithEnvironment allows setting the environment
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithLogLevel allows setting the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		parsedLevel, err := zerolog.ParseLevel(level)
		if err != nil {
			parsedLevel = zerolog.InfoLevel
		}
		c.LogLevel = parsedLevel
	}
}

// WithHTTPTimeout allows setting the upstream HTTP timeout
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.HTTPTimeout = timeout
	}
}

// WithCacheTTL allows setting the feed cache TTL
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.CacheTTL = ttl
	}
}

// New creates a new configuration with default values
func New(opts ...Option) *Config {
	cfg := &Config{
		Environment:    "production",
		LogLevel:       zerolog.InfoLevel,
		Port:           "8080",
		HTTPTimeout:    10 * time.Second,
		CacheTTL:       defaultCacheTTLSeconds * time.Second,
		TidesBaseURL:   defaultTidesBaseURL,
		WeatherBaseURL: defaultWeatherBaseURL,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// InitializeLogging sets up logging based on the configuration
func (c *Config) InitializeLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(c.LogLevel)

	// Setup console logger for development environments
	if c.Environment == "local" || c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
}

// LoadFromEnv loads configuration from environment variables, reading a
// .env file first when one is present.
func LoadFromEnv() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	cfg := New(
		WithEnvironment(getEnvOrDefault("ENV", "production")),
		WithLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		WithHTTPTimeout(getDurationEnvOrDefault("HTTP_TIMEOUT", 10*time.Second)),
		WithCacheTTL(time.Duration(getIntEnvOrDefault("CACHE_TTL_SECONDS", defaultCacheTTLSeconds))*time.Second),
	)

	cfg.Port = getEnvOrDefault("PORT", "8080")
	cfg.TidesAPIKey = os.Getenv("WORLD_TIDES_API_KEY")
	cfg.WeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.TidesBaseURL = getEnvOrDefault("WORLD_TIDES_BASE_URL", defaultTidesBaseURL)
	cfg.WeatherBaseURL = getEnvOrDefault("OPENWEATHER_BASE_URL", defaultWeatherBaseURL)

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Warn().Str("key", key).Msg("Invalid duration value in environment variable, using default")
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Msg("Invalid integer value in environment variable, using default")
	}
	return defaultValue
}
