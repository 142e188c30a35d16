package constants

import "time"

// Result caps
const (
	// TrendFoodLimit is the number of foods ranked by the trend analyzer
	TrendFoodLimit = 50
	// TrendRowLimit bounds the food x region rows read for trend analysis
	TrendRowLimit = 1000

	// SimilarFoodsCap is the maximum length of a similarity matrix
	SimilarFoodsCap = 20
	// SimilarityCandidateLimit bounds the neighbor rows scored before capping
	SimilarityCandidateLimit = 200

	// ProfileRowLimit bounds the rows read while profiling a user
	ProfileRowLimit = 100

	SeasonalCap         = 15
	RegionalStatsLimit  = 100
	DashboardTrendCount = 10
	DashboardRegionRows = 20
	DashboardTrendDays  = 30
)

// Recommendation strategy caps
const (
	AgeDifferenceCap  = 20
	CategoryRegionCap = 15
	PopularByAgeCap   = 20
	TwoHopCap         = 15
	TypeStatisticsCap = 50

	// PersonalizedCap is the size of the merged personalized list
	PersonalizedCap = 20
	// PersonalizedMostViewed is the most-viewed depth fed into the composer
	PersonalizedMostViewed = 5

	DefaultListLimit = 10
	MaxListLimit     = 100
)

// Score constants
const (
	MaxScore = 1.0

	// MergeBoost is added once per repeated occurrence during the personalized merge
	MergeBoost = 0.1

	MostViewedRankDecay = 0.1
	PopularRankDecay    = 0.05

	SameRegionScore  = 1.0
	OtherRegionScore = 0.7

	TwoHopDifferentTypeScore = 0.9
	TwoHopSameRegionScore    = 0.8
	TwoHopDefaultScore       = 0.6

	// DashboardPopularThreshold counts a trend row as popular on the dashboard
	DashboardPopularThreshold = 0.7
)

// Defaults applied when configuration leaves them unset
const (
	DefaultQueryTimeout = 10 * time.Second
	DefaultCacheTTL     = 5 * time.Minute
)
