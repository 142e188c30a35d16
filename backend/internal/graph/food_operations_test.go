package graph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gourmet-graph/backend/internal/graph"
	"gourmet-graph/backend/internal/graph/graphtest"
	apperrors "gourmet-graph/backend/pkg/errors"
)

func TestFoodStore_GetFood(t *testing.T) {
	gw := graphtest.New().On("food_detail", graph.Row{
		"id":            "f1",
		"name":          "Phở bò",
		"type":          "Món nước",
		"description":   "Phở truyền thống",
		"price":         int64(45000),
		"viewCount":     int64(120),
		"likeCount":     int64(8),
		"region":        "Miền Bắc",
		"ingredientSet": []interface{}{"bánh phở", "thịt bò", nil},
	})
	store := graph.NewFoodStore(gw)

	food, err := store.GetFood(context.Background(), "f1")
	require.NoError(t, err)

	assert.Equal(t, "Phở bò", food.Name)
	assert.Equal(t, 45000.0, food.Price)
	assert.Equal(t, int64(120), food.ViewCount)
	assert.Equal(t, int64(8), food.LikeCount)
	assert.Equal(t, "Miền Bắc", food.Region)
	assert.Equal(t, []string{"bánh phở", "thịt bò"}, food.IngredientSet)
	assert.Equal(t, "f1", gw.LastParams("food_detail")["foodID"])
}

func TestFoodStore_GetFood_IngredientsStoredAsList(t *testing.T) {
	gw := graphtest.New().On("food_detail", graph.Row{
		"id":          "f2",
		"name":        "Bún bò Huế",
		"ingredients": []interface{}{"bún", "thịt bò", "sả"},
	})

	food, err := graph.NewFoodStore(gw).GetFood(context.Background(), "f2")
	require.NoError(t, err)
	assert.Equal(t, "bún, thịt bò, sả", food.Ingredients)

	body, err := json.Marshal(food)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"viewCount":0`)
	assert.Contains(t, string(body), `"ingredientSet":[]`)
}

func TestFoodStore_GetFood_NotFound(t *testing.T) {
	store := graph.NewFoodStore(graphtest.New())

	_, err := store.GetFood(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFoodStore_GetViewCount(t *testing.T) {
	gw := graphtest.New().On("food_view_count", graph.Row{"viewCount": int64(-3)})
	store := graph.NewFoodStore(gw)

	count, err := store.GetViewCount(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	count, err = graph.NewFoodStore(graphtest.New()).GetViewCount(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestFoodStore_IncrementViewCount(t *testing.T) {
	gw := graphtest.New().On("food_increment_view", graph.Row{"viewCount": int64(11)})
	store := graph.NewFoodStore(gw)

	count, err := store.IncrementViewCount(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(11), count)

	calls := gw.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "command", calls[0].Kind)
}

func TestFoodStore_IncrementViewCount_NotFound(t *testing.T) {
	store := graph.NewFoodStore(graphtest.New())

	_, err := store.IncrementViewCount(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFoodStore_BatchIncrementViewCounts(t *testing.T) {
	gw := graphtest.New().On("food_batch_increment_view", graph.Row{"updated": int64(2)})
	store := graph.NewFoodStore(gw)

	updated, err := store.BatchIncrementViewCounts(context.Background(), []string{"f1", "f2", "ghost"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)
	assert.Equal(t, []string{"f1", "f2", "ghost"}, gw.LastParams("food_batch_increment_view")["foodIDs"])

	updated, err = store.BatchIncrementViewCounts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
	assert.Equal(t, 1, gw.CallCount("food_batch_increment_view"))
}

func TestFoodStore_TopViewedFoods(t *testing.T) {
	gw := graphtest.New().On("food_top_viewed",
		graph.Row{"id": "a", "name": "Bún chả", "viewCount": int64(90)},
		graph.Row{"id": "b", "name": "Cơm tấm", "viewCount": int64(40)},
		graph.Row{"id": "c", "name": "Bánh xèo", "viewCount": int64(10)},
	)
	store := graph.NewFoodStore(gw)

	foods, err := store.TopViewedFoods(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, 1, foods[0].Rank)
	assert.Equal(t, "Cơm tấm", foods[1].Name)
	assert.Equal(t, 2, foods[1].Rank)
}

func TestFoodStore_ListRegions(t *testing.T) {
	gw := graphtest.New().On("region_list",
		graph.Row{"id": "r1", "name": "Miền Bắc", "foodCount": int64(12)},
		graph.Row{"id": "r2", "name": "Miền Trung", "foodCount": int64(0)},
	)

	regions, err := graph.NewFoodStore(gw).ListRegions(context.Background())
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, int64(12), regions[0].FoodCount)
}

func TestFoodStore_UpstreamFailure(t *testing.T) {
	gw := graphtest.New().Fail("region_list", apperrors.NewUpstreamQueryFailed("region_list", errors.New("connection reset")))

	_, err := graph.NewFoodStore(gw).ListRegions(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
	assert.False(t, apperrors.IsNotFound(err))
}

func TestEnsureSchema(t *testing.T) {
	gw := graphtest.New()

	require.NoError(t, graph.EnsureSchema(context.Background(), gw))

	calls := gw.Calls()
	require.NotEmpty(t, calls)
	for _, c := range calls {
		assert.Equal(t, "command", c.Kind)
		assert.Contains(t, c.Query.Cypher, "IF NOT EXISTS")
	}
}

func TestEnsureSchema_ConstraintFailure(t *testing.T) {
	gw := graphtest.New().Fail("schema_constraint_0", errors.New("duplicate ids"))

	err := graph.EnsureSchema(context.Background(), gw)
	assert.Error(t, err)
}

func TestEnsureSchema_IndexFailureIsSkipped(t *testing.T) {
	gw := graphtest.New().Fail("schema_index_1", errors.New("unsupported"))

	assert.NoError(t, graph.EnsureSchema(context.Background(), gw))
}
