package recommend

import (
	"context"
	"fmt"
	"sort"

	"gourmet-graph/backend/internal/graph"
	"gourmet-graph/backend/pkg/validation"
)

// InfluentialUsers ranks users by likes + views + ratings
func (e *Engine) InfluentialUsers(ctx context.Context, limit int) ([]UserInfluence, error) {
	if err := validation.Struct(limitParams{Limit: limit}); err != nil {
		return nil, err
	}

	rows, err := e.gw.QueryAll(ctx, graph.Query{
		Name: "recommend_influential_users",
		Cypher: `
			MATCH (u:User)
			OPTIONAL MATCH (u)-[l:LIKES_FOOD]->(:Food)
			WITH u, count(l) AS likes
			OPTIONAL MATCH (u)-[v:VIEWS_FOOD]->(:Food)
			WITH u, likes, count(v) AS views
			OPTIONAL MATCH (u)-[rt:RATES_FOOD]->(:Food)
			WITH u, likes, views, count(rt) AS ratings
			OPTIONAL MATCH (u)-[:PREFERS_REGION]->(r:Region)
			WITH u, likes + views + ratings AS actionCount, collect(r.name) AS preferred
			RETURN
				u.id AS userId,
				u.name AS userName,
				u.age AS age,
				u.region AS userRegion,
				head(preferred) AS preferredRegion,
				actionCount
			ORDER BY actionCount DESC, userName ASC
			LIMIT $limit
		`,
		Params: map[string]interface{}{"limit": limit},
	}, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get influential users: %w", err)
	}

	users := make([]UserInfluence, 0, len(rows))
	for _, row := range rows {
		region := row.String("userRegion")
		if region == "" {
			region = row.String("preferredRegion")
		}
		users = append(users, UserInfluence{
			UserID:      row.String("userId"),
			UserName:    row.String("userName"),
			ActionCount: row.Int64("actionCount"),
			Region:      region,
			Age:         row.Int("age"),
		})
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].ActionCount > users[j].ActionCount
	})
	return users, nil
}
