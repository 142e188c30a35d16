package recommend

// Recommendation is one scored food suggestion. Score is always within [0, 1].
type Recommendation struct {
	FoodID   string  `json:"foodId"`
	FoodName string  `json:"foodName"`
	Reason   string  `json:"reason"`
	Score    float64 `json:"score"`
}

// TypeStatistic aggregates engagement for one food type
type TypeStatistic struct {
	FoodType      string  `json:"foodType"`
	FoodCount     int64   `json:"foodCount"`
	TotalLikes    int64   `json:"totalLikes"`
	TotalViews    int64   `json:"totalViews"`
	RatingCount   int64   `json:"ratingCount"`
	AverageRating float64 `json:"averageRating"`
}

// UserInfluence ranks a user by how much they interact with the catalog
type UserInfluence struct {
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	ActionCount int64  `json:"actionCount"`
	Region      string `json:"region,omitempty"`
	Age         int    `json:"age"`
}

// PersonalizedRequest carries the user context fed into the composer
type PersonalizedRequest struct {
	UserID     string   `json:"userId" validate:"required"`
	Age        int      `json:"userAge" validate:"min=0,max=150"`
	Region     string   `json:"userRegion"`
	Categories []string `json:"categories"`
}
