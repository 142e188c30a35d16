package recommend

import (
	"context"
	"fmt"
	"strings"

	"gourmet-graph/backend/internal/constants"
	"gourmet-graph/backend/internal/graph"
)

// CategoryRegion suggests foods of the given types, preferring the user's region.
// An empty category list lists every type rather than matching nothing.
func (e *Engine) CategoryRegion(ctx context.Context, region string, categories []string) ([]Recommendation, error) {
	region = strings.TrimSpace(region)
	categories = normalizeCategories(categories)

	rows, err := e.gw.QueryAll(ctx, graph.Query{
		Name: "recommend_category_region",
		Cypher: `
			MATCH (f:Food)
			WHERE size($categories) = 0 OR f.type IN $categories
			OPTIONAL MATCH (f)-[:FROM_REGION]->(r:Region)
			RETURN f.id AS foodId, f.name AS foodName, f.type AS foodType, r.name AS regionName
			ORDER BY CASE WHEN toLower(r.name) = toLower($region) THEN 0 ELSE 1 END, foodName ASC
			LIMIT $limit
		`,
		Params: map[string]interface{}{
			"region":     region,
			"categories": categories,
			"limit":      candidateLimit,
		},
	}, candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get category region recommendations: %w", err)
	}

	return buildCategoryRegion(region, rows), nil
}

func buildCategoryRegion(region string, rows []graph.Row) []Recommendation {
	recs := make([]Recommendation, 0, len(rows))
	for _, row := range rows {
		foodRegion := row.String("regionName")
		score := constants.OtherRegionScore
		if region != "" && strings.EqualFold(foodRegion, region) {
			score = constants.SameRegionScore
		}

		reason := row.String("foodType")
		if foodRegion != "" {
			reason = fmt.Sprintf("%s from %s", reason, foodRegion)
		}
		recs = append(recs, Recommendation{
			FoodID:   row.String("foodId"),
			FoodName: row.String("foodName"),
			Reason:   strings.TrimSpace(reason),
			Score:    clampScore(score),
		})
	}

	recs = keepBest(recs)
	sortByScore(recs)
	return capList(recs, constants.CategoryRegionCap)
}
