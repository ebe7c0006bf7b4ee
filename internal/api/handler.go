package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/seaward/tidecast/internal/cache"
	"github.com/seaward/tidecast/internal/feeds"
	"github.com/seaward/tidecast/internal/report"
)

// FeedStatus is what the health endpoint needs to know about a feed.
type FeedStatus interface {
	Configured() bool
}

// Handler exposes the report pipeline over HTTP. It is a thin boundary:
// coordinate range checks happen here, the core assumes valid input.
type Handler struct {
	reports *report.Service
	cache   *cache.TTLCache
	tides   FeedStatus
	weather FeedStatus
}

func NewHandler(reports *report.Service, ttlCache *cache.TTLCache, tides, weather FeedStatus) *Handler {
	return &Handler{
		reports: reports,
		cache:   ttlCache,
		tides:   tides,
		weather: weather,
	}
}

// GetTides handles GET /tides?lat&lon&timezone.
func (h *Handler) GetTides(c *gin.Context) {
	lat, lon, err := parseCoordinates(c.Query("lat"), c.Query("lon"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.reports.GetReport(c.Request.Context(), lat, lon, c.Query("timezone"))
	if err != nil {
		log.Error().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("Error building tide report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": describeFeedError(err)})
		return
	}

	c.JSON(http.StatusOK, result)
}

// HealthCheck handles GET /health: credential status per feed and the
// current cache entry count, with no side effects.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services": gin.H{
			"tides_api":   credentialStatus(h.tides),
			"weather_api": credentialStatus(h.weather),
		},
		"cache_entries": h.cache.Len(),
	})
}

// ClearCache handles POST /cache/clear. Idempotent, always succeeds.
func (h *Handler) ClearCache(c *gin.Context) {
	count := h.cache.Clear()
	c.JSON(http.StatusOK, gin.H{
		"message":         "Cache cleared successfully",
		"entries_removed": count,
	})
}

// Root handles GET /.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Tide Information API",
		"status":  "operational",
	})
}

func parseCoordinates(latStr, lonStr string) (float64, float64, error) {
	if latStr == "" || lonStr == "" {
		return 0, 0, errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, errors.New("invalid latitude")
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return 0, 0, errors.New("invalid longitude")
	}

	if lat < -90 || lat > 90 {
		return 0, 0, errors.New("latitude must be between -90 and 90 degrees")
	}
	if lon < -180 || lon > 180 {
		return 0, 0, errors.New("longitude must be between -180 and 180 degrees")
	}

	return lat, lon, nil
}

// describeFeedError keeps enough detail to diagnose (which feed, what
// cause) without leaking credentials.
func describeFeedError(err error) string {
	var configErr *feeds.ConfigError
	if errors.As(err, &configErr) {
		return configErr.Error()
	}

	var upstreamErr *feeds.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Error()
	}

	return "Error getting tide data"
}

func credentialStatus(feed FeedStatus) string {
	if feed.Configured() {
		return "configured"
	}
	return "missing_key"
}
