package graph

import (
	"context"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gourmet-graph/backend/pkg/errors"
)

// These tests require a running Neo4j instance at bolt://localhost:7687 (neo4j/password)
func TestRepository_IncrementViewCount(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver, err := createTestDriver()
	if err != nil {
		t.Skipf("Neo4j not reachable: %v", err)
	}
	defer driver.Close(ctx)

	repo := NewRepository(driver, Options{QueryTimeout: 5 * time.Second})
	store := NewFoodStore(repo)
	foodID := "test-food-" + time.Now().Format("20060102150405")

	// Clean up
	defer func() {
		_, _ = repo.Command(ctx, Query{
			Name:   "test_cleanup",
			Cypher: "MATCH (f:Food {id: $id}) DETACH DELETE f",
			Params: map[string]interface{}{"id": foodID},
		})
	}()

	_, err = repo.Command(ctx, Query{
		Name:   "test_create_food",
		Cypher: "CREATE (f:Food {id: $id, name: 'Test Phở', type: 'Món nước'}) RETURN f.id AS id",
		Params: map[string]interface{}{"id": foodID},
	})
	require.NoError(t, err)

	count, err := store.IncrementViewCount(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = store.IncrementViewCount(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	food, err := store.GetFood(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), food.ViewCount)
	assert.Empty(t, food.IngredientSet)
}

func TestRepository_QueryAllRespectsLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver, err := createTestDriver()
	if err != nil {
		t.Skipf("Neo4j not reachable: %v", err)
	}
	defer driver.Close(ctx)

	repo := NewRepository(driver, Options{})

	rows, err := repo.QueryAll(ctx, Query{Name: "test_unwind", Cypher: "UNWIND range(1, 10) AS n RETURN n"}, 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(1), rows[0].Int64("n"))

	_, err = repo.QueryAll(ctx, Query{Name: "test_unwind", Cypher: "RETURN 1 AS n"}, 0)
	assert.True(t, apperrors.IsValidation(err))

	row, err := repo.QueryOne(ctx, Query{Name: "test_empty", Cypher: "MATCH (f:Food {id: 'no-such-food'}) RETURN f.id AS id"})
	require.NoError(t, err)
	assert.Nil(t, row)
	assert.Equal(t, "closed", repo.BreakerState())
}

func TestRepository_InvalidQueryIsUpstream(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver, err := createTestDriver()
	if err != nil {
		t.Skipf("Neo4j not reachable: %v", err)
	}
	defer driver.Close(ctx)

	repo := NewRepository(driver, Options{})

	_, err = repo.QueryAll(ctx, Query{Name: "test_bad", Cypher: "THIS IS NOT CYPHER"}, 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func createTestDriver() (neo4j.DriverWithContext, error) {
	uri := "bolt://localhost:7687"
	user := "neo4j"
	password := "password"

	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, err
	}

	// Verify connection
	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, err
	}

	return driver, nil
}
