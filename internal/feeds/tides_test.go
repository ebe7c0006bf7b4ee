package feeds

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaward/tidecast/internal/cache"
	"github.com/seaward/tidecast/pkg/http/client"
)

const tideFeedBody = `{
	"status": 200,
	"extremes": [
		{"date": "2025-06-15T13:00:00Z", "type": "High", "height": 1.8},
		{"date": "2025-06-15T19:30:00Z", "type": "Low", "height": 0.2}
	]
}`

func TestTideFetchMissingCredential(t *testing.T) {
	t.Parallel()

	ttlCache := cache.New(30 * time.Minute)
	tideClient := NewTideClient(&client.Client{}, ttlCache, "")

	assert.False(t, tideClient.Configured())

	_, err := tideClient.Fetch(context.Background(), 42.0, -70.0)

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, TideFeedName, configErr.Feed)
	// A failed fetch never touches the cache
	assert.Equal(t, 0, ttlCache.Len())
}

func TestTideFetchRequestShape(t *testing.T) {
	t.Parallel()

	var gotPath string
	httpClient := &client.Client{
		GetFunc: func(_ context.Context, path string) (*client.Response, error) {
			gotPath = path
			return &client.Response{StatusCode: http.StatusOK, Body: []byte(tideFeedBody)}, nil
		},
	}

	tideClient := NewTideClient(httpClient, cache.New(30*time.Minute), "test-key")
	_, err := tideClient.Fetch(context.Background(), 42.5, -70.25)
	require.NoError(t, err)

	params, err := url.ParseQuery(strings.TrimPrefix(gotPath, "?"))
	require.NoError(t, err)

	// 48-hour window from now at hourly steps
	assert.Equal(t, "172800", params.Get("length"))
	assert.Equal(t, "3600", params.Get("step"))
	assert.Equal(t, "42.5", params.Get("lat"))
	assert.Equal(t, "-70.25", params.Get("lon"))
	assert.Equal(t, "test-key", params.Get("key"))
	assert.True(t, params.Has("extremes"))
	assert.True(t, params.Has("heights"))
	assert.NotEmpty(t, params.Get("start"))
}

func TestTideFetchCachesSuccess(t *testing.T) {
	t.Parallel()

	calls := 0
	httpClient := &client.Client{
		GetFunc: func(_ context.Context, _ string) (*client.Response, error) {
			calls++
			return &client.Response{StatusCode: http.StatusOK, Body: []byte(tideFeedBody)}, nil
		},
	}

	tideClient := NewTideClient(httpClient, cache.New(30*time.Minute), "test-key")

	first, err := tideClient.Fetch(context.Background(), 42.0, -70.0)
	require.NoError(t, err)
	require.Len(t, first.Extremes, 2)
	assert.Equal(t, "High", first.Extremes[0].Type)
	assert.Equal(t, 1.8, first.Extremes[0].Height)

	// Second fetch for the same coordinate is served from cache
	second, err := tideClient.Fetch(context.Background(), 42.0, -70.0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	// A nearby-but-different coordinate is a distinct key
	_, err = tideClient.Fetch(context.Background(), 42.0000001, -70.0)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestTideFetchUpstreamFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		getFunc func(ctx context.Context, path string) (*client.Response, error)
	}{
		{
			name: "transport error",
			getFunc: func(_ context.Context, _ string) (*client.Response, error) {
				return nil, errors.New("connection refused")
			},
		},
		{
			name: "non-200 status",
			getFunc: func(_ context.Context, _ string) (*client.Response, error) {
				return &client.Response{StatusCode: http.StatusBadGateway}, nil
			},
		},
		{
			name: "malformed body",
			getFunc: func(_ context.Context, _ string) (*client.Response, error) {
				return &client.Response{StatusCode: http.StatusOK, Body: []byte("not json")}, nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ttlCache := cache.New(30 * time.Minute)
			tideClient := NewTideClient(&client.Client{GetFunc: tt.getFunc}, ttlCache, "test-key")

			_, err := tideClient.Fetch(context.Background(), 42.0, -70.0)

			var upstreamErr *UpstreamError
			require.ErrorAs(t, err, &upstreamErr)
			assert.Equal(t, TideFeedName, upstreamErr.Feed)
			assert.Equal(t, 0, ttlCache.Len())
		})
	}
}
