package analytics

import (
	"context"
	"fmt"
	"strings"

	"gourmet-graph/backend/internal/graph"
	apperrors "gourmet-graph/backend/pkg/errors"
	"gourmet-graph/backend/pkg/validation"
)

type profileParams struct {
	UserID string `json:"userId" validate:"required"`
}

// ProfileUser aggregates a user's likes, views, ratings and region preferences
func (a *Analyzer) ProfileUser(ctx context.Context, userID string) (*UserBehaviorProfile, error) {
	userID = strings.TrimSpace(userID)
	if err := validation.Struct(profileParams{UserID: userID}); err != nil {
		return nil, err
	}

	row, err := a.gw.QueryOne(ctx, graph.Query{
		Name: "analytics_user_profile",
		Cypher: `
			MATCH (u:User {id: $userID})
			OPTIONAL MATCH (u)-[l:LIKES_FOOD]->(lf:Food)
			WITH u, count(l) AS likes, collect(lf.type) AS likedTypes
			OPTIONAL MATCH (u)-[v:VIEWS_FOOD]->(vf:Food)
			WITH u, likes, likedTypes, count(v) AS views, collect(vf.type) AS viewedTypes
			OPTIONAL MATCH (u)-[rt:RATES_FOOD]->(rf:Food)
			WITH u, likes, likedTypes, views, viewedTypes, count(rt) AS ratings, collect(rf.type) AS ratedTypes
			OPTIONAL MATCH (u)-[:PREFERS_REGION]->(r:Region)
			RETURN
				u.id AS userId,
				u.name AS userName,
				likes,
				views,
				ratings,
				likedTypes + viewedTypes + ratedTypes AS foodTypes,
				collect(DISTINCT r.name) AS regions
		`,
		Params: map[string]interface{}{"userID": userID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to profile user: %w", err)
	}
	if row == nil {
		return nil, apperrors.NewUserNotFound(userID)
	}

	return buildProfile(row), nil
}

func buildProfile(row graph.Row) *UserBehaviorProfile {
	total := row.Int64("likes") + row.Int64("views") + row.Int64("ratings")
	types := distinct(row.Strings("foodTypes"))

	return &UserBehaviorProfile{
		UserID:            row.String("userId"),
		UserName:          row.String("userName"),
		FavoriteFoodTypes: types,
		PreferredRegions:  distinct(row.Strings("regions")),
		TotalActions:      total,
		ActivityLevel:     DetermineActivityLevel(total),
		InfluenceScore:    InfluenceScore(total, len(types)),
	}
}

// distinct keeps the first occurrence of each value
func distinct(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
