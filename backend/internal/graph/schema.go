package graph

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gourmet-graph/backend/pkg/logger"
)

var schemaConstraints = []string{
	"CREATE CONSTRAINT food_id_unique IF NOT EXISTS FOR (f:Food) REQUIRE f.id IS UNIQUE",
	"CREATE CONSTRAINT user_id_unique IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE",
	"CREATE CONSTRAINT region_id_unique IF NOT EXISTS FOR (r:Region) REQUIRE r.id IS UNIQUE",
	"CREATE CONSTRAINT ingredient_name_unique IF NOT EXISTS FOR (i:Ingredient) REQUIRE i.name IS UNIQUE",
}

var schemaIndexes = []string{
	"CREATE INDEX food_name IF NOT EXISTS FOR (f:Food) ON (f.name)",
	"CREATE INDEX food_type IF NOT EXISTS FOR (f:Food) ON (f.type)",
	"CREATE INDEX food_view_count IF NOT EXISTS FOR (f:Food) ON (f.view_count)",
	"CREATE INDEX region_name IF NOT EXISTS FOR (r:Region) ON (r.name)",
	"CREATE INDEX user_age IF NOT EXISTS FOR (u:User) ON (u.age)",
}

// EnsureSchema creates the constraints and indexes the catalog queries rely on.
// Statements are idempotent. Index failures are logged and skipped; a failed
// constraint is returned since it means duplicate ids already exist.
func EnsureSchema(ctx context.Context, gw Gateway) error {
	log := logger.Named("schema")

	for i, stmt := range schemaConstraints {
		if _, err := gw.Command(ctx, Query{Name: fmt.Sprintf("schema_constraint_%d", i), Cypher: stmt}); err != nil {
			return fmt.Errorf("failed to create constraint: %w", err)
		}
	}

	created := 0
	for i, stmt := range schemaIndexes {
		if _, err := gw.Command(ctx, Query{Name: fmt.Sprintf("schema_index_%d", i), Cypher: stmt}); err != nil {
			log.Warn("Failed to create index", zap.String("index", stmt), zap.Error(err))
			continue
		}
		created++
	}

	log.Info("Schema ensured",
		zap.Int("constraints", len(schemaConstraints)),
		zap.Int("indexes", created),
	)
	return nil
}
