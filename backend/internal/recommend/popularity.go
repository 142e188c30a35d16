package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"

	"gourmet-graph/backend/internal/constants"
	"gourmet-graph/backend/internal/graph"
	"gourmet-graph/backend/pkg/validation"
)

type limitParams struct {
	Limit int `json:"limit" validate:"min=1,max=100"`
}

// MostViewed returns up to limit foods by view count, scored 1.0 - 0.1 x rank
func (e *Engine) MostViewed(ctx context.Context, limit int) ([]Recommendation, error) {
	if err := validation.Struct(limitParams{Limit: limit}); err != nil {
		return nil, err
	}

	rows, err := e.gw.QueryAll(ctx, graph.Query{
		Name: "recommend_most_viewed",
		Cypher: `
			MATCH (f:Food)
			RETURN f.id AS foodId, f.name AS foodName, coalesce(f.view_count, 0) AS viewCount
			ORDER BY viewCount DESC, foodName ASC
			LIMIT $limit
		`,
		Params: map[string]interface{}{"limit": limit},
	}, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get most viewed foods: %w", err)
	}

	recs := make([]Recommendation, 0, len(rows))
	for i, row := range rows {
		recs = append(recs, Recommendation{
			FoodID:   row.String("foodId"),
			FoodName: row.String("foodName"),
			Reason:   fmt.Sprintf("Most viewed - Top %d", i+1),
			Score:    rankScore(i, constants.MostViewedRankDecay),
		})
	}
	return capList(recs, limit), nil
}

// PopularByAgeGroup ranks foods by how many distinct users like them, scored 1.0 - 0.05 x rank
func (e *Engine) PopularByAgeGroup(ctx context.Context) ([]Recommendation, error) {
	rows, err := e.gw.QueryAll(ctx, graph.Query{
		Name: "recommend_popular_by_age",
		Cypher: `
			MATCH (u:User)-[:LIKES_FOOD]->(f:Food)
			WITH f, count(DISTINCT u) AS userCount
			RETURN f.id AS foodId, f.name AS foodName, userCount
			ORDER BY userCount DESC, foodName ASC
			LIMIT $limit
		`,
		Params: map[string]interface{}{"limit": constants.PopularByAgeCap},
	}, constants.PopularByAgeCap)
	if err != nil {
		return nil, fmt.Errorf("failed to get popular foods: %w", err)
	}

	recs := make([]Recommendation, 0, len(rows))
	for i, row := range rows {
		recs = append(recs, Recommendation{
			FoodID:   row.String("foodId"),
			FoodName: row.String("foodName"),
			Reason:   fmt.Sprintf("Popular with %d users", row.Int64("userCount")),
			Score:    rankScore(i, constants.PopularRankDecay),
		})
	}
	return capList(recs, constants.PopularByAgeCap), nil
}

// TypeStatistics aggregates food count, likes, views and average rating per food type
func (e *Engine) TypeStatistics(ctx context.Context) ([]TypeStatistic, error) {
	rows, err := e.gw.QueryAll(ctx, graph.Query{
		Name: "recommend_type_statistics",
		Cypher: `
			MATCH (f:Food)
			OPTIONAL MATCH (f)<-[l:LIKES_FOOD]-(:User)
			WITH f, count(l) AS likes
			OPTIONAL MATCH (f)<-[rt:RATES_FOOD]-(:User)
			WITH f, likes, count(rt.rating) AS ratings, sum(coalesce(rt.rating, 0)) AS ratingTotal
			WITH coalesce(f.type, '') AS foodType,
				count(f) AS foodCount,
				sum(likes) AS totalLikes,
				sum(coalesce(f.view_count, 0)) AS totalViews,
				sum(ratings) AS ratingCount,
				sum(ratingTotal) AS ratingSum
			RETURN foodType, foodCount, totalLikes, totalViews, ratingCount, ratingSum
			ORDER BY totalLikes DESC, foodType ASC
			LIMIT $limit
		`,
		Params: map[string]interface{}{"limit": constants.TypeStatisticsCap},
	}, constants.TypeStatisticsCap)
	if err != nil {
		return nil, fmt.Errorf("failed to get type statistics: %w", err)
	}

	return buildTypeStatistics(rows), nil
}

func buildTypeStatistics(rows []graph.Row) []TypeStatistic {
	stats := make([]TypeStatistic, 0, len(rows))
	for _, row := range rows {
		count := row.Int64("ratingCount")
		avg := 0.0
		if count > 0 {
			avg = math.Round(row.Float64("ratingSum")/float64(count)*100) / 100
		}
		views := row.Int64("totalViews")
		if views < 0 {
			views = 0
		}
		stats = append(stats, TypeStatistic{
			FoodType:      row.String("foodType"),
			FoodCount:     row.Int64("foodCount"),
			TotalLikes:    row.Int64("totalLikes"),
			TotalViews:    views,
			RatingCount:   count,
			AverageRating: avg,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalLikes > stats[j].TotalLikes
	})
	return stats
}
