package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gourmet-graph/backend/internal/graph"
	"gourmet-graph/backend/internal/graph/graphtest"
)

func TestSeasonKeywords(t *testing.T) {
	assert.Equal(t, []string{"hè", "mùa hè", "nóng"}, SeasonKeywords("summer"))
	assert.Equal(t, SeasonKeywords("winter"), SeasonKeywords(" Winter "))
	assert.Nil(t, SeasonKeywords("monsoon"))
}

func TestSeasonalRecommendations_UnknownSeason(t *testing.T) {
	gw := graphtest.New()

	foods, err := NewAnalyzer(gw).SeasonalRecommendations(context.Background(), "monsoon")
	require.NoError(t, err)
	assert.NotNil(t, foods)
	assert.Empty(t, foods)
	assert.Empty(t, gw.Calls())
}

func TestSeasonalRecommendations_MatchesAndRanks(t *testing.T) {
	gw := graphtest.New().On("analytics_seasonal",
		graph.Row{"foodId": "a", "foodName": "Chè đậu xanh", "description": "Giải nhiệt ngày NÓNG", "likeCount": int64(4)},
		graph.Row{"foodId": "b", "foodName": "Lẩu", "description": "Ăn khi trời lạnh", "likeCount": int64(40)},
		graph.Row{"foodId": "c", "foodName": "Kem", "description": "Món mùa hè", "likeCount": int64(12)},
	)

	foods, err := NewAnalyzer(gw).SeasonalRecommendations(context.Background(), "summer")
	require.NoError(t, err)

	require.Len(t, foods, 2)
	assert.Equal(t, "c", foods[0].FoodID)
	assert.Equal(t, "a", foods[1].FoodID)
	assert.Equal(t, []string{"hè", "mùa hè", "nóng"}, gw.LastParams("analytics_seasonal")["keywords"])
}

func TestRegionalAgeStatistics_Ordering(t *testing.T) {
	gw := graphtest.New().On("analytics_regional_age",
		graph.Row{"regionName": "Miền Nam", "userAge": int64(20), "foodType": "Bánh", "likeCount": int64(1), "viewCount": int64(5)},
		graph.Row{"regionName": "Miền Bắc", "userAge": int64(30), "foodType": "Món nước", "likeCount": int64(2), "viewCount": int64(9)},
		graph.Row{"regionName": "Miền Bắc", "userAge": int64(25), "foodType": "Bánh", "likeCount": int64(1), "viewCount": int64(-1)},
		graph.Row{"regionName": "Miền Bắc", "userAge": int64(25), "foodType": "Món nước", "likeCount": int64(7), "viewCount": int64(3)},
	)

	stats, err := NewAnalyzer(gw).RegionalAgeStatistics(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 4)

	assert.Equal(t, RegionalAgeStat{RegionName: "Miền Bắc", UserAge: 25, FoodType: "Món nước", LikeCount: 7, ViewCount: 3}, stats[0])
	assert.Equal(t, int64(0), stats[1].ViewCount)
	assert.Equal(t, 30, stats[2].UserAge)
	assert.Equal(t, "Miền Nam", stats[3].RegionName)
}
