package analytics

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"gourmet-graph/backend/internal/constants"
)

// Dashboard combines the 30-day trends with the regional cross-tab
func (a *Analyzer) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		trends   []TrendAnalysis
		regional []RegionalAgeStat
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		trends, err = a.AnalyzeTrends(gctx, constants.DashboardTrendDays)
		return err
	})
	g.Go(func() error {
		var err error
		regional, err = a.RegionalAgeStatistics(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildDashboard(trends, regional), nil
}

func buildDashboard(trends []TrendAnalysis, regional []RegionalAgeStat) *Dashboard {
	summary := DashboardSummary{TotalFoods: len(trends)}
	for _, t := range trends {
		if t.ViewTrend == TrendIncreasing {
			summary.IncreasingTrends++
		}
		if t.PopularityScore > constants.DashboardPopularThreshold {
			summary.PopularFoods++
		}
	}
	if summary.TotalFoods > 0 {
		summary.TrendPercentage = int(math.Round(float64(summary.IncreasingTrends) / float64(summary.TotalFoods) * 100))
	}

	if len(trends) > constants.DashboardTrendCount {
		trends = trends[:constants.DashboardTrendCount]
	}
	if len(regional) > constants.DashboardRegionRows {
		regional = regional[:constants.DashboardRegionRows]
	}
	if trends == nil {
		trends = []TrendAnalysis{}
	}
	if regional == nil {
		regional = []RegionalAgeStat{}
	}

	return &Dashboard{
		Summary:       summary,
		Trends:        trends,
		RegionalStats: regional,
	}
}
