package analytics

import "math"

// DetermineTrend maps a counter to a trend: above 100 is increasing, above 50 stable
func DetermineTrend(count int64) Trend {
	if count > 100 {
		return TrendIncreasing
	}
	if count > 50 {
		return TrendStable
	}
	return TrendDecreasing
}

// DetermineActivityLevel maps a total action count to an activity bucket
func DetermineActivityLevel(totalActions int64) ActivityLevel {
	if totalActions > 50 {
		return ActivityHigh
	}
	if totalActions > 20 {
		return ActivityMedium
	}
	return ActivityLow
}

// PopularityScore weights views and likes 60/40. It is not bounded to [0,1].
func PopularityScore(views, likes int64) float64 {
	return round2(0.6*float64(views) + 0.4*float64(likes))
}

// InfluenceScore is min(1, actions*0.01 + distinctTypes*0.1)
func InfluenceScore(totalActions int64, foodTypeCount int) float64 {
	return clamp01(float64(totalActions)*0.01 + float64(foodTypeCount)*0.1)
}

// SimilarityScore is min(1, common*0.2 + 0.3 when the types match)
func SimilarityScore(commonIngredients int64, sameType bool) float64 {
	score := float64(commonIngredients) * 0.2
	if sameType {
		score += 0.3
	}
	return round2(clamp01(score))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
