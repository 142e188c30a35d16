package graph

// ============================================================================
// Catalog Entities
// ============================================================================

// Food is a catalog entry as read from the graph. Region and IngredientSet come from
// FROM_REGION and HAS_INGREDIENT edges; either may be empty.
type Food struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Description   string   `json:"description,omitempty"`
	Ingredients   string   `json:"ingredients,omitempty"` // free text, or a stored list joined with ", "
	Recipe        string   `json:"recipe,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Price         float64  `json:"price"`
	ViewCount     int64    `json:"viewCount"`
	LikeCount     int64    `json:"likeCount"`
	Region        string   `json:"region,omitempty"`
	IngredientSet []string `json:"ingredientSet"`
}

// FoodViews is a food ranked by its view counter
type FoodViews struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ViewCount int64  `json:"viewCount"`
	Rank      int    `json:"rank"`
}

// Region is a culinary region with the number of foods attached to it
type Region struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FoodCount int64  `json:"foodCount"`
}
