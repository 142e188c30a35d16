package graph

import (
	"context"
	"fmt"

	apperrors "gourmet-graph/backend/pkg/errors"
)

// ============================================================================
// Food Catalog Operations
// ============================================================================

// FoodStore reads food details and maintains view counters through a Gateway
type FoodStore struct {
	gw Gateway
}

// NewFoodStore creates a FoodStore over the given gateway
func NewFoodStore(gw Gateway) *FoodStore {
	return &FoodStore{gw: gw}
}

// GetFood retrieves a food with its region, ingredient set and like count
func (s *FoodStore) GetFood(ctx context.Context, foodID string) (*Food, error) {
	row, err := s.gw.QueryOne(ctx, Query{
		Name: "food_detail",
		Cypher: `
			MATCH (f:Food {id: $foodID})
			OPTIONAL MATCH (f)-[:FROM_REGION]->(r:Region)
			OPTIONAL MATCH (f)-[:HAS_INGREDIENT]->(i:Ingredient)
			WITH f, head(collect(DISTINCT r.name)) AS region, collect(DISTINCT i.name) AS ingredientSet
			OPTIONAL MATCH (f)<-[l:LIKES_FOOD]-(:User)
			RETURN
				f.id AS id,
				f.name AS name,
				f.type AS type,
				f.description AS description,
				f.ingredients AS ingredients,
				f.recipe AS recipe,
				f.image_url AS imageUrl,
				coalesce(f.price, 0.0) AS price,
				coalesce(f.view_count, 0) AS viewCount,
				region,
				ingredientSet,
				count(l) AS likeCount
		`,
		Params: map[string]interface{}{"foodID": foodID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get food: %w", err)
	}
	if row == nil {
		return nil, apperrors.NewFoodNotFound(foodID)
	}

	return &Food{
		ID:            row.String("id"),
		Name:          row.String("name"),
		Type:          row.String("type"),
		Description:   row.String("description"),
		Ingredients:   row.Text("ingredients"),
		Recipe:        row.String("recipe"),
		ImageURL:      row.String("imageUrl"),
		Price:         row.Float64("price"),
		ViewCount:     nonNegative(row.Int64("viewCount")),
		LikeCount:     row.Int64("likeCount"),
		Region:        row.String("region"),
		IngredientSet: row.Strings("ingredientSet"),
	}, nil
}

// GetViewCount returns the view counter of a food; unknown foods read as 0
func (s *FoodStore) GetViewCount(ctx context.Context, foodID string) (int64, error) {
	row, err := s.gw.QueryOne(ctx, Query{
		Name: "food_view_count",
		Cypher: `
			MATCH (f:Food {id: $foodID})
			RETURN coalesce(f.view_count, 0) AS viewCount
		`,
		Params: map[string]interface{}{"foodID": foodID},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get view count: %w", err)
	}
	if row == nil {
		return 0, nil
	}
	return nonNegative(row.Int64("viewCount")), nil
}

// IncrementViewCount adds one view to a food and returns the new counter
func (s *FoodStore) IncrementViewCount(ctx context.Context, foodID string) (int64, error) {
	row, err := s.gw.Command(ctx, Query{
		Name: "food_increment_view",
		Cypher: `
			MATCH (f:Food {id: $foodID})
			SET f.view_count = coalesce(f.view_count, 0) + 1
			RETURN f.view_count AS viewCount
		`,
		Params: map[string]interface{}{"foodID": foodID},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment view count: %w", err)
	}
	if row == nil {
		return 0, apperrors.NewFoodNotFound(foodID)
	}
	return row.Int64("viewCount"), nil
}

// BatchIncrementViewCounts adds one view to each listed food and returns how many matched
func (s *FoodStore) BatchIncrementViewCounts(ctx context.Context, foodIDs []string) (int64, error) {
	if len(foodIDs) == 0 {
		return 0, nil
	}

	row, err := s.gw.Command(ctx, Query{
		Name: "food_batch_increment_view",
		Cypher: `
			MATCH (f:Food)
			WHERE f.id IN $foodIDs
			SET f.view_count = coalesce(f.view_count, 0) + 1
			RETURN count(f) AS updated
		`,
		Params: map[string]interface{}{"foodIDs": foodIDs},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to batch increment view counts: %w", err)
	}
	if row == nil {
		return 0, nil
	}
	return row.Int64("updated"), nil
}

// TopViewedFoods lists foods that have been viewed at least once, most viewed first
func (s *FoodStore) TopViewedFoods(ctx context.Context, limit int) ([]FoodViews, error) {
	rows, err := s.gw.QueryAll(ctx, Query{
		Name: "food_top_viewed",
		Cypher: `
			MATCH (f:Food)
			WHERE coalesce(f.view_count, 0) > 0
			RETURN f.id AS id, f.name AS name, f.view_count AS viewCount
			ORDER BY viewCount DESC, name ASC
			LIMIT $limit
		`,
		Params: map[string]interface{}{"limit": limit},
	}, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top viewed foods: %w", err)
	}

	foods := make([]FoodViews, 0, len(rows))
	for i, row := range rows {
		foods = append(foods, FoodViews{
			ID:        row.String("id"),
			Name:      row.String("name"),
			ViewCount: nonNegative(row.Int64("viewCount")),
			Rank:      i + 1,
		})
	}
	return foods, nil
}

// ListRegions lists every region with the number of foods attached to it
func (s *FoodStore) ListRegions(ctx context.Context) ([]Region, error) {
	rows, err := s.gw.QueryAll(ctx, Query{
		Name: "region_list",
		Cypher: `
			MATCH (r:Region)
			OPTIONAL MATCH (r)<-[:FROM_REGION]-(f:Food)
			RETURN r.id AS id, r.name AS name, count(DISTINCT f) AS foodCount
			ORDER BY name ASC
		`,
	}, 500)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}

	regions := make([]Region, 0, len(rows))
	for _, row := range rows {
		regions = append(regions, Region{
			ID:        row.String("id"),
			Name:      row.String("name"),
			FoodCount: row.Int64("foodCount"),
		})
	}
	return regions, nil
}

func nonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
