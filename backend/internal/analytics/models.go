package analytics

// Trend classifies a view or like counter
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendStable     Trend = "stable"
	TrendDecreasing Trend = "decreasing"
)

// ActivityLevel buckets a user's total interaction count
type ActivityLevel string

const (
	ActivityHigh   ActivityLevel = "high"
	ActivityMedium ActivityLevel = "medium"
	ActivityLow    ActivityLevel = "low"
)

// RegionCount is one entry of a food's region distribution
type RegionCount struct {
	Region string `json:"region"`
	Count  int    `json:"count"`
}

// TrendAnalysis is the popularity summary of one food
type TrendAnalysis struct {
	FoodID             string        `json:"foodId"`
	FoodName           string        `json:"foodName"`
	FoodType           string        `json:"foodType"`
	ViewCount          int64         `json:"viewCount"`
	LikeCount          int64         `json:"likeCount"`
	ViewTrend          Trend         `json:"viewTrend"`
	LikeTrend          Trend         `json:"likeTrend"`
	PopularityScore    float64       `json:"popularityScore"`
	RegionDistribution []RegionCount `json:"regionDistribution"`
}

// SimilarFood is a neighbor in a similarity matrix
type SimilarFood struct {
	FoodID            string  `json:"foodId"`
	FoodName          string  `json:"foodName"`
	CommonIngredients int64   `json:"commonIngredients"`
	SimilarityScore   float64 `json:"similarityScore"`
}

// SimilarityMatrix lists the foods sharing ingredients with a source food
type SimilarityMatrix struct {
	FoodID       string        `json:"foodId"`
	FoodName     string        `json:"foodName"`
	SimilarFoods []SimilarFood `json:"similarFoods"`
}

// UserBehaviorProfile summarizes a user's interactions
type UserBehaviorProfile struct {
	UserID            string        `json:"userId"`
	UserName          string        `json:"userName"`
	FavoriteFoodTypes []string      `json:"favoriteFoodTypes"`
	PreferredRegions  []string      `json:"preferredRegions"`
	TotalActions      int64         `json:"totalActions"`
	ActivityLevel     ActivityLevel `json:"activityLevel"`
	InfluenceScore    float64       `json:"influenceScore"`
}

// SeasonalFood is a food whose description matched a season keyword
type SeasonalFood struct {
	FoodID      string `json:"foodId"`
	FoodName    string `json:"foodName"`
	FoodType    string `json:"foodType"`
	Description string `json:"description"`
	LikeCount   int64  `json:"likeCount"`
}

// RegionalAgeStat is one cell of the region x age x food type cross-tab
type RegionalAgeStat struct {
	RegionName string `json:"regionName"`
	UserAge    int    `json:"userAge"`
	FoodType   string `json:"foodType"`
	LikeCount  int64  `json:"likeCount"`
	ViewCount  int64  `json:"viewCount"`
}

// DashboardSummary aggregates the trend list
type DashboardSummary struct {
	TotalFoods       int `json:"totalFoods"`
	IncreasingTrends int `json:"increasingTrends"`
	PopularFoods     int `json:"popularFoods"`
	TrendPercentage  int `json:"trendPercentage"`
}

// Dashboard is the combined analytics overview
type Dashboard struct {
	Summary       DashboardSummary  `json:"summary"`
	Trends        []TrendAnalysis   `json:"trends"`
	RegionalStats []RegionalAgeStat `json:"regionalStats"`
}
