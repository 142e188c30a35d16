package recommend

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gourmet-graph/backend/internal/constants"
	"gourmet-graph/backend/internal/metrics"
	"gourmet-graph/backend/pkg/validation"
)

type strategy struct {
	name string
	run  func(ctx context.Context) ([]Recommendation, error)
}

// Personalized runs the age, category/region, popularity and most-viewed strategies
// concurrently and merges them. A failing or timed out strategy contributes nothing.
func (e *Engine) Personalized(ctx context.Context, req PersonalizedRequest) ([]Recommendation, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	strategies := []strategy{
		{"age_difference", func(ctx context.Context) ([]Recommendation, error) {
			return e.AgeDifference(ctx, req.Age)
		}},
		{"category_region", func(ctx context.Context) ([]Recommendation, error) {
			return e.CategoryRegion(ctx, req.Region, req.Categories)
		}},
		{"popular_by_age", e.PopularByAgeGroup},
		{"most_viewed", func(ctx context.Context) ([]Recommendation, error) {
			return e.MostViewed(ctx, constants.PersonalizedMostViewed)
		}},
	}

	results := e.runAll(ctx, req.UserID, strategies)
	merged := Merge(results...)

	e.logger.Debug("Personalized recommendations composed",
		zap.String("user_id", req.UserID),
		zap.Int("merged", len(merged)),
	)
	return merged, nil
}

// runAll runs every strategy under its own timeout and keeps results in strategy order.
// Errors never cancel siblings.
func (e *Engine) runAll(ctx context.Context, userID string, strategies []strategy) [][]Recommendation {
	results := make([][]Recommendation, len(strategies))

	var g errgroup.Group
	for i, s := range strategies {
		i, s := i, s
		g.Go(func() error {
			sctx, cancel := context.WithTimeout(ctx, e.strategyTimeout)
			defer cancel()

			start := time.Now()
			recs, err := s.run(sctx)
			if err != nil {
				metrics.StrategyFailures.WithLabelValues(s.name).Inc()
				e.logger.Warn("Recommendation strategy failed, continuing without it",
					zap.String("strategy", s.name),
					zap.String("user_id", userID),
					zap.Duration("elapsed", time.Since(start)),
					zap.Error(err),
				)
				return nil
			}
			results[i] = recs
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Merge combines lists keyed by food id. The first occurrence is the base record and every
// later occurrence adds a flat 0.1 to its score, capped at 1.0. The result is sorted by
// score descending and trimmed to 20.
func Merge(lists ...[]Recommendation) []Recommendation {
	index := make(map[string]int)
	merged := make([]Recommendation, 0)

	for _, list := range lists {
		for _, rec := range list {
			if rec.FoodID == "" {
				continue
			}
			if i, ok := index[rec.FoodID]; ok {
				merged[i].Score = clampScore(merged[i].Score + constants.MergeBoost)
				continue
			}
			index[rec.FoodID] = len(merged)
			rec.Score = clampScore(rec.Score)
			merged = append(merged, rec)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	return capList(merged, constants.PersonalizedCap)
}
