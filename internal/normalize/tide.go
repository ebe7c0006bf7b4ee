package normalize

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/seaward/tidecast/internal/models"
)

const (
	// Canonical output caps: 6 upcoming extremes, and the first 4
	// highs/lows feed the daily max/min heights.
	nextExtremesLimit  = 6
	summaryHeightLimit = 4

	tideTimeLayout = "2006-01-02 15:04:05"
)

// extremeDateLayouts covers the ISO-8601 variants the tide feed emits.
var extremeDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04-07:00",
	"2006-01-02T15:04-0700",
	"2006-01-02T15:04:05",
}

// Tide converts a raw extremes feed into canonical tide state rendered in
// loc. Rows with unparseable timestamps are dropped; all other malformed
// fields default rather than error. Normalization is idempotent for a
// fixed now.
func Tide(feed models.TideFeed, loc *time.Location, now time.Time) models.TideState {
	state := models.TideState{NextTides: []models.TideExtreme{}}

	for _, raw := range feed.Extremes {
		if len(state.NextTides) >= nextExtremesLimit {
			break
		}

		occursAt, err := parseExtremeDate(raw.Date, loc)
		if err != nil {
			continue
		}

		state.NextTides = append(state.NextTides, models.TideExtreme{
			Type:         classifyTideType(raw.Type),
			Height:       round2(raw.Height),
			Time:         occursAt.In(loc).Format(tideTimeLayout),
			RelativeTime: RelativeTime(occursAt, now),
		})
	}

	state.DailySummary = summarize(feed.Extremes, loc, now)
	return state
}

// summarize restricts the high/low counts to extremes falling on the
// current local day; max/min heights come from the first 4 highs/lows of
// the whole window, defaulting to 0 when none match.
func summarize(extremes []models.RawExtreme, loc *time.Location, now time.Time) models.DailySummary {
	var summary models.DailySummary
	var highHeights, lowHeights []float64

	for _, raw := range extremes {
		switch classifyTideType(raw.Type) {
		case models.TideTypeHigh:
			if isToday(raw.Date, loc, now) {
				summary.HighTidesCount++
			}
			if len(highHeights) < summaryHeightLimit {
				highHeights = append(highHeights, raw.Height)
			}
		case models.TideTypeLow:
			if isToday(raw.Date, loc, now) {
				summary.LowTidesCount++
			}
			if len(lowHeights) < summaryHeightLimit {
				lowHeights = append(lowHeights, raw.Height)
			}
		}
	}

	summary.MaxHeight = round2(maxOf(highHeights))
	summary.MinHeight = round2(minOf(lowHeights))
	return summary
}

// RelativeTime labels target relative to now: "Past", or "In N
// minutes/hours/days" with N integer-truncated, not rounded.
func RelativeTime(target, now time.Time) string {
	diff := target.Sub(now)

	switch {
	case diff < 0:
		return "Past"
	case diff < time.Hour:
		return fmt.Sprintf("In %d minutes", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("In %d hours", int(diff.Hours()))
	default:
		return fmt.Sprintf("In %d days", int(diff.Hours()/24))
	}
}

func classifyTideType(raw string) models.TideType {
	switch {
	case strings.EqualFold(raw, "high"):
		return models.TideTypeHigh
	case strings.EqualFold(raw, "low"):
		return models.TideTypeLow
	default:
		return models.TideType(title(raw))
	}
}

func parseExtremeDate(date string, loc *time.Location) (time.Time, error) {
	var lastErr error
	for _, layout := range extremeDateLayouts {
		t, err := time.ParseInLocation(layout, date, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func isToday(date string, loc *time.Location, now time.Time) bool {
	t, err := parseExtremeDate(date, loc)
	if err != nil {
		return false
	}

	localNow := now.In(loc)
	local := t.In(loc)
	return local.Year() == localNow.Year() && local.YearDay() == localNow.YearDay()
}

func maxOf(values []float64) float64 {
	var max float64
	for i, v := range values {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}

func minOf(values []float64) float64 {
	var min float64
	for i, v := range values {
		if i == 0 || v < min {
			min = v
		}
	}
	return min
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
