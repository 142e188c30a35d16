package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gourmet-graph/backend/internal/constants"
	"gourmet-graph/backend/internal/graph"
	apperrors "gourmet-graph/backend/pkg/errors"
	"gourmet-graph/backend/pkg/validation"
)

type similarityParams struct {
	FoodID string `json:"foodId" validate:"required"`
}

// SimilarFoods scores the foods sharing at least one ingredient with foodID.
// Candidates are ranked by the same score in the query so the row limit keeps the best ones.
// A food with no ingredient neighbors is reported as not found.
func (a *Analyzer) SimilarFoods(ctx context.Context, foodID string) (*SimilarityMatrix, error) {
	foodID = strings.TrimSpace(foodID)
	if err := validation.Struct(similarityParams{FoodID: foodID}); err != nil {
		return nil, err
	}

	rows, err := a.gw.QueryAll(ctx, graph.Query{
		Name: "analytics_similarity",
		Cypher: `
			MATCH (f1:Food {id: $foodID})-[:HAS_INGREDIENT]->(i:Ingredient)<-[:HAS_INGREDIENT]-(f2:Food)
			WHERE f2.id <> f1.id
			WITH f1, f2, count(DISTINCT i) AS commonIngredients
			WITH f1, f2, commonIngredients,
				commonIngredients * 0.2 +
				CASE WHEN f1.type IS NOT NULL AND f1.type <> '' AND f1.type = f2.type THEN 0.3 ELSE 0.0 END AS rawScore
			WITH f1, f2, commonIngredients, CASE WHEN rawScore > 1.0 THEN 1.0 ELSE rawScore END AS candidateScore
			RETURN
				f1.id AS foodId,
				f1.name AS foodName,
				f1.type AS foodType,
				f2.id AS similarFoodId,
				f2.name AS similarFoodName,
				f2.type AS similarFoodType,
				commonIngredients
			ORDER BY candidateScore DESC, commonIngredients DESC, similarFoodName ASC
			LIMIT $limit
		`,
		Params: map[string]interface{}{
			"foodID": foodID,
			"limit":  constants.SimilarityCandidateLimit,
		},
	}, constants.SimilarityCandidateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute similarity: %w", err)
	}

	matrix := buildSimilarity(foodID, rows)
	if len(matrix.SimilarFoods) == 0 {
		return nil, apperrors.NewFoodNotFound(foodID)
	}
	return matrix, nil
}

func buildSimilarity(foodID string, rows []graph.Row) *SimilarityMatrix {
	matrix := &SimilarityMatrix{FoodID: foodID, SimilarFoods: []SimilarFood{}}
	seen := make(map[string]bool)

	for _, row := range rows {
		if matrix.FoodName == "" {
			matrix.FoodName = row.String("foodName")
		}

		id := row.String("similarFoodId")
		if id == "" || id == foodID || seen[id] {
			continue
		}
		seen[id] = true

		sourceType := row.String("foodType")
		common := row.Int64("commonIngredients")
		matrix.SimilarFoods = append(matrix.SimilarFoods, SimilarFood{
			FoodID:            id,
			FoodName:          row.String("similarFoodName"),
			CommonIngredients: common,
			SimilarityScore:   SimilarityScore(common, sourceType != "" && sourceType == row.String("similarFoodType")),
		})
	}

	foods := matrix.SimilarFoods
	sort.SliceStable(foods, func(i, j int) bool {
		if foods[i].SimilarityScore != foods[j].SimilarityScore {
			return foods[i].SimilarityScore > foods[j].SimilarityScore
		}
		if foods[i].CommonIngredients != foods[j].CommonIngredients {
			return foods[i].CommonIngredients > foods[j].CommonIngredients
		}
		return foods[i].FoodName < foods[j].FoodName
	})
	if len(foods) > constants.SimilarFoodsCap {
		matrix.SimilarFoods = foods[:constants.SimilarFoodsCap]
	}
	return matrix
}
