package report

import (
	"context"

	"github.com/seaward/tidecast/internal/models"
)

// TideFetcher is the essential feed: its errors abort the request.
type TideFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (models.TideFeed, error)
	Configured() bool
}

// WeatherFetcher is the enrichment feed: its failures degrade to an empty
// payload.
type WeatherFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (models.WeatherFeed, error)
	Configured() bool
}
