package marine

import (
	"github.com/seaward/tidecast/internal/models"
)

const (
	ActivitySurfing     = "Surfing"
	ActivityFishing     = "Fishing"
	ActivitySwimming    = "Swimming"
	ActivityBeachWalk   = "Beach walking"
	ActivityObservation = "General observation"
)

// Recommend synthesizes the best-activity verdict from the scored state.
// The branches form an ordered decision table; the first matching guard
// wins and the branches are mutually exclusive. With no upcoming extremes
// at all it returns the neutral default without entering the table.
func Recommend(tides models.TideState, weather models.WeatherState, conditions models.MarineConditions) models.Recommendation {
	rec := models.Recommendation{
		BestActivity: ActivityObservation,
		BestTime:     "Current time",
		Tips:         []string{},
	}

	if len(tides.NextTides) == 0 {
		return rec
	}
	next := tides.NextTides[0]

	var scores models.ActivityScores
	if conditions.Suitability != nil {
		scores = *conditions.Suitability
	}

	switch {
	case scores.Surfing >= 7 && next.Type == models.TideTypeHigh:
		rec.BestActivity = ActivitySurfing
		rec.Tips = append(rec.Tips, "High tide approaching - excellent surfing conditions")
	case scores.Fishing >= 7:
		rec.BestActivity = ActivityFishing
		if next.Type == models.TideTypeLow {
			rec.Tips = append(rec.Tips, "Low tide period - fish often feed more actively")
		}
	case scores.Swimming >= 6:
		rec.BestActivity = ActivitySwimming
	default:
		rec.BestActivity = ActivityBeachWalk
		if next.Type == models.TideTypeLow {
			rec.Tips = append(rec.Tips, "Low tide - great time for exploring tide pools")
		}
	}

	rec.BestTime = next.Time

	if weather.Current != nil {
		if weather.Current.Temperature > 25 {
			rec.Tips = append(rec.Tips, "Warm conditions - stay hydrated and use sun protection")
		}
		if weather.Current.WindSpeed < 5 {
			rec.Tips = append(rec.Tips, "Calm winds - ideal for water activities")
		}
	}

	return rec
}
