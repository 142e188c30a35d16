package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"gourmet-graph/backend/internal/constants"
	"gourmet-graph/backend/internal/graph"
)

// seasonKeywords are matched case-insensitively against food descriptions
var seasonKeywords = map[string][]string{
	"spring": {"xuân", "mùa xuân", "đầu năm"},
	"summer": {"hè", "mùa hè", "nóng"},
	"autumn": {"thu", "mùa thu", "mát"},
	"winter": {"đông", "mùa đông", "lạnh"},
}

// SeasonKeywords returns the keyword set of a season, or nil for an unknown season
func SeasonKeywords(season string) []string {
	keywords, ok := seasonKeywords[strings.ToLower(strings.TrimSpace(season))]
	if !ok {
		return nil
	}
	out := make([]string, len(keywords))
	copy(out, keywords)
	return out
}

// SeasonalRecommendations lists foods whose description mentions the season, most liked first.
// An unknown season yields an empty list without querying.
func (a *Analyzer) SeasonalRecommendations(ctx context.Context, season string) ([]SeasonalFood, error) {
	keywords := SeasonKeywords(season)
	if len(keywords) == 0 {
		a.logger.Debug("Unknown season", zap.String("season", season))
		return []SeasonalFood{}, nil
	}

	rows, err := a.gw.QueryAll(ctx, graph.Query{
		Name: "analytics_seasonal",
		Cypher: `
			MATCH (f:Food)
			WHERE any(k IN $keywords WHERE toLower(coalesce(f.description, '')) CONTAINS k)
			OPTIONAL MATCH (f)<-[l:LIKES_FOOD]-(:User)
			RETURN
				f.id AS foodId,
				f.name AS foodName,
				f.type AS foodType,
				f.description AS description,
				count(l) AS likeCount
			ORDER BY likeCount DESC, foodName ASC
			LIMIT $limit
		`,
		Params: map[string]interface{}{
			"keywords": keywords,
			"limit":    constants.SeasonalCap,
		},
	}, constants.SeasonalCap)
	if err != nil {
		return nil, fmt.Errorf("failed to get seasonal recommendations: %w", err)
	}

	return buildSeasonal(keywords, rows), nil
}

func buildSeasonal(keywords []string, rows []graph.Row) []SeasonalFood {
	foods := make([]SeasonalFood, 0, len(rows))
	for _, row := range rows {
		description := row.String("description")
		if !matchesAny(description, keywords) {
			continue
		}
		foods = append(foods, SeasonalFood{
			FoodID:      row.String("foodId"),
			FoodName:    row.String("foodName"),
			FoodType:    row.String("foodType"),
			Description: description,
			LikeCount:   row.Int64("likeCount"),
		})
	}

	sort.SliceStable(foods, func(i, j int) bool {
		return foods[i].LikeCount > foods[j].LikeCount
	})
	if len(foods) > constants.SeasonalCap {
		foods = foods[:constants.SeasonalCap]
	}
	return foods
}

func matchesAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// RegionalAgeStatistics cross-tabulates likes and views by region, user age and food type
func (a *Analyzer) RegionalAgeStatistics(ctx context.Context) ([]RegionalAgeStat, error) {
	rows, err := a.gw.QueryAll(ctx, graph.Query{
		Name: "analytics_regional_age",
		Cypher: `
			MATCH (r:Region)<-[:FROM_REGION]-(f:Food)<-[l:LIKES_FOOD]-(u:User)
			WITH r.name AS regionName, u.age AS userAge, f.type AS foodType,
				count(l) AS likeCount, collect(DISTINCT f) AS foods
			RETURN
				regionName,
				userAge,
				foodType,
				likeCount,
				reduce(total = 0, x IN foods | total + coalesce(x.view_count, 0)) AS viewCount
			ORDER BY regionName ASC, userAge ASC, likeCount DESC
			LIMIT $limit
		`,
		Params: map[string]interface{}{"limit": constants.RegionalStatsLimit},
	}, constants.RegionalStatsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get regional age statistics: %w", err)
	}

	return buildRegionalStats(rows), nil
}

func buildRegionalStats(rows []graph.Row) []RegionalAgeStat {
	stats := make([]RegionalAgeStat, 0, len(rows))
	for _, row := range rows {
		views := row.Int64("viewCount")
		if views < 0 {
			views = 0
		}
		stats = append(stats, RegionalAgeStat{
			RegionName: row.String("regionName"),
			UserAge:    row.Int("userAge"),
			FoodType:   row.String("foodType"),
			LikeCount:  row.Int64("likeCount"),
			ViewCount:  views,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].RegionName != stats[j].RegionName {
			return stats[i].RegionName < stats[j].RegionName
		}
		if stats[i].UserAge != stats[j].UserAge {
			return stats[i].UserAge < stats[j].UserAge
		}
		return stats[i].LikeCount > stats[j].LikeCount
	})
	return stats
}
