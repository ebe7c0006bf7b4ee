package marine

import (
	"strings"

	"github.com/seaward/tidecast/internal/models"
)

const (
	RatingExcellent = "Excellent"
	RatingGood      = "Good"
	RatingFair      = "Fair"
	RatingPoor      = "Poor"
	RatingUnknown   = "Unknown"
)

// Assess rates the snapshot for each supported activity. All rules are
// independent additive adjustments over the same snapshot; no rule depends
// on another's outcome. Without current weather the rating is Unknown and
// no per-activity scores are produced.
func Assess(weather models.WeatherState, tides models.TideState) models.MarineConditions {
	conditions := models.MarineConditions{
		OverallRating: RatingUnknown,
		Warnings:      []string{},
	}

	if weather.Current == nil {
		return conditions
	}
	current := weather.Current

	scores := models.ActivityScores{
		Swimming: swimmingScore(current.Temperature, current.WindSpeed),
		Surfing:  surfingScore(current.WindSpeed, tides),
		Fishing:  fishingScore(current.WindSpeed, tides),
		Boating:  boatingScore(current.WindSpeed, current.Visibility),
	}
	conditions.Suitability = &scores

	avg := float64(scores.Swimming+scores.Surfing+scores.Fishing+scores.Boating) / 4
	switch {
	case avg >= 8:
		conditions.OverallRating = RatingExcellent
	case avg >= 6:
		conditions.OverallRating = RatingGood
	case avg >= 4:
		conditions.OverallRating = RatingFair
	default:
		conditions.OverallRating = RatingPoor
	}

	if current.WindSpeed > 10 {
		conditions.Warnings = append(conditions.Warnings, "Strong winds - exercise caution")
	}
	if current.Temperature < 10 {
		conditions.Warnings = append(conditions.Warnings, "Cold temperature - consider thermal protection")
	}
	if current.Visibility != nil && *current.Visibility < 2 {
		conditions.Warnings = append(conditions.Warnings, "Low visibility conditions")
	}

	return conditions
}

func swimmingScore(tempC, windSpeed float64) int {
	score := 5
	if tempC > 20 {
		score += 2
	}
	if tempC > 25 {
		score += 2
	}
	if windSpeed < 5 {
		score++
	}
	if tempC < 15 {
		score -= 3
	}
	if windSpeed > 15 {
		score -= 2
	}
	return clampScore(score)
}

func surfingScore(windSpeed float64, tides models.TideState) int {
	score := 5
	if windSpeed >= 5 && windSpeed <= 15 {
		score += 2
	}
	if next, ok := nextTide(tides); ok && next.Type == models.TideTypeHigh {
		score += 2
	}
	if windSpeed > 20 {
		score -= 3
	}
	return clampScore(score)
}

func fishingScore(windSpeed float64, tides models.TideState) int {
	score := 6
	if windSpeed < 10 {
		score += 2
	}
	if next, ok := nextTide(tides); ok &&
		next.Type == models.TideTypeLow &&
		strings.HasPrefix(next.RelativeTime, "In ") {
		score += 2
	}
	if windSpeed > 15 {
		score -= 2
	}
	return clampScore(score)
}

func boatingScore(windSpeed float64, visibilityKm *float64) int {
	score := 6
	if windSpeed < 8 {
		score += 2
	}
	if visibilityKm != nil && *visibilityKm > 5 {
		score += 2
	}
	if windSpeed > 12 {
		score -= 3
	}
	if visibilityKm != nil && *visibilityKm < 2 {
		score -= 3
	}
	return clampScore(score)
}

func nextTide(tides models.TideState) (models.TideExtreme, bool) {
	if len(tides.NextTides) == 0 {
		return models.TideExtreme{}, false
	}
	return tides.NextTides[0], true
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
