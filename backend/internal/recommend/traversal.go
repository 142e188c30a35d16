package recommend

import (
	"context"
	"fmt"
	"strings"

	"gourmet-graph/backend/internal/constants"
	"gourmet-graph/backend/internal/graph"
	"gourmet-graph/backend/pkg/validation"
)

type twoHopParams struct {
	FoodName string `json:"foodName" validate:"required"`
}

// TwoHopScore favors a different type (0.9), then a shared region (0.8), else 0.6
func TwoHopScore(sourceType, targetType, sourceRegion, targetRegion string) float64 {
	switch {
	case sourceType != targetType:
		return constants.TwoHopDifferentTypeScore
	case sourceRegion != "" && sourceRegion == targetRegion:
		return constants.TwoHopSameRegionScore
	default:
		return constants.TwoHopDefaultScore
	}
}

// TwoHop suggests foods reachable from the named food through one shared ingredient.
// An unknown food name yields an empty list.
func (e *Engine) TwoHop(ctx context.Context, foodName string) ([]Recommendation, error) {
	foodName = strings.TrimSpace(foodName)
	if err := validation.Struct(twoHopParams{FoodName: foodName}); err != nil {
		return nil, err
	}

	rows, err := e.gw.QueryAll(ctx, graph.Query{
		Name: "recommend_two_hop",
		Cypher: `
			MATCH (f1:Food {name: $foodName})-[:HAS_INGREDIENT]->(:Ingredient)<-[:HAS_INGREDIENT]-(f2:Food)
			WHERE f2.id <> f1.id AND f2.name <> f1.name
			OPTIONAL MATCH (f1)-[:FROM_REGION]->(r1:Region)
			OPTIONAL MATCH (f2)-[:FROM_REGION]->(r2:Region)
			RETURN DISTINCT
				f2.id AS foodId,
				f2.name AS foodName,
				f1.type AS sourceType,
				f2.type AS foodType,
				r1.name AS sourceRegion,
				r2.name AS foodRegion
			LIMIT $limit
		`,
		Params: map[string]interface{}{
			"foodName": foodName,
			"limit":    candidateLimit,
		},
	}, candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get two-hop recommendations: %w", err)
	}

	return buildTwoHop(foodName, rows), nil
}

func buildTwoHop(foodName string, rows []graph.Row) []Recommendation {
	recs := make([]Recommendation, 0, len(rows))
	for _, row := range rows {
		if row.String("foodName") == foodName {
			continue
		}
		score := TwoHopScore(
			row.String("sourceType"), row.String("foodType"),
			row.String("sourceRegion"), row.String("foodRegion"),
		)
		recs = append(recs, Recommendation{
			FoodID:   row.String("foodId"),
			FoodName: row.String("foodName"),
			Reason:   fmt.Sprintf("Related to %s", foodName),
			Score:    clampScore(score),
		})
	}

	recs = keepBest(recs)
	sortByScore(recs)
	return capList(recs, constants.TwoHopCap)
}
