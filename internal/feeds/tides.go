package feeds

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seaward/tidecast/internal/cache"
	"github.com/seaward/tidecast/internal/models"
	"github.com/seaward/tidecast/pkg/http/client"
)

const (
	TideFeedName = "tides"

	// Fixed request window: 48 hours of extremes/heights from now at an
	// hourly step.
	tideWindowSeconds = 172800
	tideStepSeconds   = 3600
)

// TideClient fetches tide extremes from the WorldTides API. The tide feed
// is essential: a missing credential or upstream failure fails the whole
// request rather than degrading.
type TideClient struct {
	httpClient client.Interface
	cache      *cache.TTLCache
	apiKey     string
	now        func() time.Time
}

func NewTideClient(httpClient client.Interface, ttlCache *cache.TTLCache, apiKey string) *TideClient {
	return &TideClient{
		httpClient: httpClient,
		cache:      ttlCache,
		apiKey:     apiKey,
		now:        time.Now,
	}
}

// Configured reports whether a credential is present.
func (c *TideClient) Configured() bool {
	return c.apiKey != ""
}

// Fetch returns the raw extremes feed for a coordinate, consulting the
// shared cache first and populating it on success. Failed fetches are
// never cached.
func (c *TideClient) Fetch(ctx context.Context, lat, lon float64) (models.TideFeed, error) {
	if c.apiKey == "" {
		return models.TideFeed{}, NewConfigError(TideFeedName)
	}

	key := cache.Key(TideFeedName, lat, lon)
	if payload, ok := c.cache.Get(key); ok {
		if feed, ok := payload.(models.TideFeed); ok {
			log.Debug().Str("key", key).Msg("Cache HIT for tide feed")
			return feed, nil
		}
	}
	log.Debug().Str("key", key).Msg("Cache MISS for tide feed, calling WorldTides API")

	params := url.Values{}
	params.Set("extremes", "")
	params.Set("heights", "")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("key", c.apiKey)
	params.Set("start", strconv.FormatInt(c.now().Unix(), 10))
	params.Set("length", strconv.Itoa(tideWindowSeconds))
	params.Set("step", strconv.Itoa(tideStepSeconds))

	resp, err := c.httpClient.Get(ctx, "?"+params.Encode())
	if err != nil {
		return models.TideFeed{}, &UpstreamError{Feed: TideFeedName, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return models.TideFeed{}, &UpstreamError{Feed: TideFeedName, StatusCode: resp.StatusCode}
	}

	var feed models.TideFeed
	if err := json.Unmarshal(resp.Body, &feed); err != nil {
		return models.TideFeed{}, &UpstreamError{Feed: TideFeedName, Err: err}
	}

	c.cache.Put(key, feed)
	return feed, nil
}
