package recommend

import (
	"context"
	"fmt"
	"sort"

	"gourmet-graph/backend/internal/constants"
	"gourmet-graph/backend/internal/graph"
	"gourmet-graph/backend/pkg/validation"
)

type ageParams struct {
	UserAge int `json:"userAge" validate:"min=0,max=150"`
}

// AgeDifferenceScore scores a liker's age gap: 0.8 within 5 years, 0.6 within 10, else 0.4
func AgeDifferenceScore(likerAge, targetAge int) float64 {
	diff := likerAge - targetAge
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 5:
		return 0.8
	case diff <= 10:
		return 0.6
	default:
		return 0.4
	}
}

// AgeDifference suggests foods liked by users of a different age, closest ages first
func (e *Engine) AgeDifference(ctx context.Context, userAge int) ([]Recommendation, error) {
	if err := validation.Struct(ageParams{UserAge: userAge}); err != nil {
		return nil, err
	}

	rows, err := e.gw.QueryAll(ctx, graph.Query{
		Name: "recommend_age_difference",
		Cypher: `
			MATCH (u:User)-[:LIKES_FOOD]->(f:Food)
			WHERE u.age IS NOT NULL AND u.age <> $userAge
			RETURN f.id AS foodId, f.name AS foodName, u.age AS likerAge
			ORDER BY abs(u.age - $userAge) ASC, u.age ASC, foodName ASC
			LIMIT $limit
		`,
		Params: map[string]interface{}{
			"userAge": userAge,
			"limit":   candidateLimit,
		},
	}, candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get age difference recommendations: %w", err)
	}

	return buildAgeDifference(userAge, rows), nil
}

func buildAgeDifference(userAge int, rows []graph.Row) []Recommendation {
	type scored struct {
		rec Recommendation
		age int
	}

	best := make(map[string]int)
	list := make([]scored, 0, len(rows))
	for _, row := range rows {
		id := row.String("foodId")
		age := row.Int("likerAge")
		if id == "" || !row.Has("likerAge") || age == userAge {
			continue
		}

		s := scored{
			rec: Recommendation{
				FoodID:   id,
				FoodName: row.String("foodName"),
				Reason:   fmt.Sprintf("Liked by users aged %d", age),
				Score:    clampScore(AgeDifferenceScore(age, userAge)),
			},
			age: age,
		}
		if i, ok := best[id]; ok {
			cur := list[i]
			if s.rec.Score > cur.rec.Score || (s.rec.Score == cur.rec.Score && s.age < cur.age) {
				list[i] = s
			}
			continue
		}
		best[id] = len(list)
		list = append(list, s)
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].rec.Score != list[j].rec.Score {
			return list[i].rec.Score > list[j].rec.Score
		}
		return list[i].age < list[j].age
	})

	recs := make([]Recommendation, 0, len(list))
	for _, s := range list {
		recs = append(recs, s.rec)
	}
	return capList(recs, constants.AgeDifferenceCap)
}
