package api

import (
	"context"

	"gourmet-graph/backend/internal/analytics"
	"gourmet-graph/backend/internal/graph"
	"gourmet-graph/backend/internal/recommend"
)

// AnalyticsService is implemented by analytics.Analyzer
type AnalyticsService interface {
	AnalyzeTrends(ctx context.Context, windowDays int) ([]analytics.TrendAnalysis, error)
	ProfileUser(ctx context.Context, userID string) (*analytics.UserBehaviorProfile, error)
	SimilarFoods(ctx context.Context, foodID string) (*analytics.SimilarityMatrix, error)
	SeasonalRecommendations(ctx context.Context, season string) ([]analytics.SeasonalFood, error)
	RegionalAgeStatistics(ctx context.Context) ([]analytics.RegionalAgeStat, error)
	Dashboard(ctx context.Context) (*analytics.Dashboard, error)
}

// RecommendationService is implemented by recommend.Engine
type RecommendationService interface {
	AgeDifference(ctx context.Context, userAge int) ([]recommend.Recommendation, error)
	CategoryRegion(ctx context.Context, region string, categories []string) ([]recommend.Recommendation, error)
	MostViewed(ctx context.Context, limit int) ([]recommend.Recommendation, error)
	TypeStatistics(ctx context.Context) ([]recommend.TypeStatistic, error)
	PopularByAgeGroup(ctx context.Context) ([]recommend.Recommendation, error)
	TwoHop(ctx context.Context, foodName string) ([]recommend.Recommendation, error)
	InfluentialUsers(ctx context.Context, limit int) ([]recommend.UserInfluence, error)
	Personalized(ctx context.Context, req recommend.PersonalizedRequest) ([]recommend.Recommendation, error)
}

// CatalogService is implemented by catalog.Service
type CatalogService interface {
	ViewFood(ctx context.Context, foodID string) (*graph.Food, error)
	IncrementViewCount(ctx context.Context, foodID string) (int64, error)
	BatchIncrementViewCounts(ctx context.Context, foodIDs []string) (int64, error)
	GetViewCount(ctx context.Context, foodID string) (int64, error)
	TopViewedFoods(ctx context.Context, limit int) ([]graph.FoodViews, error)
	ListRegions(ctx context.Context) ([]graph.Region, error)
	CacheBackend() string
}

// HealthChecker reports on the graph connection
type HealthChecker interface {
	Ping(ctx context.Context) error
	BreakerState() string
}
