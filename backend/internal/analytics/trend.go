package analytics

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"gourmet-graph/backend/internal/constants"
	"gourmet-graph/backend/internal/graph"
	"gourmet-graph/backend/pkg/validation"
)

type trendParams struct {
	WindowDays int `json:"days" validate:"min=1,max=3650"`
}

// AnalyzeTrends ranks up to 50 foods by views then likes and classifies each counter.
// windowDays is forwarded to the query but does not filter by time.
func (a *Analyzer) AnalyzeTrends(ctx context.Context, windowDays int) ([]TrendAnalysis, error) {
	if err := validation.Struct(trendParams{WindowDays: windowDays}); err != nil {
		return nil, err
	}

	rows, err := a.gw.QueryAll(ctx, graph.Query{
		Name: "analytics_trends",
		Cypher: `
			MATCH (f:Food)
			OPTIONAL MATCH (f)<-[l:LIKES_FOOD]-(:User)
			WITH f, count(l) AS likeCount
			ORDER BY coalesce(f.view_count, 0) DESC, likeCount DESC
			LIMIT $limit
			OPTIONAL MATCH (f)-[:FROM_REGION]->(r:Region)
			OPTIONAL MATCH (f)<-[rl:LIKES_FOOD]-(:User)
			WITH f, likeCount, r, count(rl) AS regionLikes
			RETURN
				f.id AS foodId,
				f.name AS foodName,
				f.type AS foodType,
				coalesce(f.view_count, 0) AS viewCount,
				likeCount,
				r.name AS regionName,
				regionLikes
			ORDER BY viewCount DESC, likeCount DESC
		`,
		Params: map[string]interface{}{
			"limit": constants.TrendFoodLimit,
			"days":  windowDays,
		},
	}, constants.TrendRowLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze trends: %w", err)
	}

	trends := buildTrends(rows)
	a.logger.Debug("Trends analyzed",
		zap.Int("window_days", windowDays),
		zap.Int("rows", len(rows)),
		zap.Int("foods", len(trends)),
	)
	return trends, nil
}

// buildTrends folds food x region rows into one analysis per food. Each region is weighted by
// the likes matched through it, with a floor of 1 for a region nobody liked yet.
func buildTrends(rows []graph.Row) []TrendAnalysis {
	type acc struct {
		analysis TrendAnalysis
		regions  map[string]int
		order    []string
	}

	byID := make(map[string]*acc)
	ids := make([]string, 0)

	for _, row := range rows {
		id := row.String("foodId")
		if id == "" {
			continue
		}

		a, ok := byID[id]
		if !ok {
			if len(ids) >= constants.TrendFoodLimit {
				continue
			}
			views := row.Int64("viewCount")
			if views < 0 {
				views = 0
			}
			likes := row.Int64("likeCount")
			a = &acc{
				analysis: TrendAnalysis{
					FoodID:          id,
					FoodName:        row.String("foodName"),
					FoodType:        row.String("foodType"),
					ViewCount:       views,
					LikeCount:       likes,
					ViewTrend:       DetermineTrend(views),
					LikeTrend:       DetermineTrend(likes),
					PopularityScore: PopularityScore(views, likes),
				},
				regions: make(map[string]int),
			}
			byID[id] = a
			ids = append(ids, id)
		}

		region := row.String("regionName")
		if region == "" {
			continue
		}
		if _, seen := a.regions[region]; !seen {
			a.order = append(a.order, region)
		}
		weight := row.Int("regionLikes")
		if weight < 1 {
			weight = 1
		}
		a.regions[region] += weight
	}

	trends := make([]TrendAnalysis, 0, len(ids))
	for _, id := range ids {
		a := byID[id]
		dist := make([]RegionCount, 0, len(a.order))
		for _, region := range a.order {
			dist = append(dist, RegionCount{Region: region, Count: a.regions[region]})
		}
		a.analysis.RegionDistribution = dist
		trends = append(trends, a.analysis)
	}

	sort.SliceStable(trends, func(i, j int) bool {
		if trends[i].ViewCount != trends[j].ViewCount {
			return trends[i].ViewCount > trends[j].ViewCount
		}
		return trends[i].LikeCount > trends[j].LikeCount
	})
	return trends
}
