// Package recommend implements the recommendation strategies and the personalized composer.
package recommend

import (
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"gourmet-graph/backend/internal/constants"
	"gourmet-graph/backend/internal/graph"
	"gourmet-graph/backend/pkg/logger"
)

// candidateLimit bounds the rows read by strategies that de-duplicate in Go
const candidateLimit = 200

// Options tune an Engine
type Options struct {
	// StrategyTimeout bounds each strategy run by the composer
	StrategyTimeout time.Duration
}

// Engine runs recommendation strategies against the graph
type Engine struct {
	gw              graph.Gateway
	strategyTimeout time.Duration
	logger          *zap.Logger
}

// NewEngine creates a recommendation engine
func NewEngine(gw graph.Gateway, opts Options) *Engine {
	if opts.StrategyTimeout <= 0 {
		opts.StrategyTimeout = constants.DefaultQueryTimeout
	}
	return &Engine{
		gw:              gw,
		strategyTimeout: opts.StrategyTimeout,
		logger:          logger.Named("recommend"),
	}
}

func clampScore(score float64) float64 {
	return math.Round(math.Max(0, math.Min(constants.MaxScore, score))*100) / 100
}

// rankScore decays linearly with rank and never drops below 0
func rankScore(index int, decay float64) float64 {
	return clampScore(constants.MaxScore - float64(index)*decay)
}

// keepBest collapses duplicates by food id, keeping the highest score.
// The first occurrence wins ties, and output keeps first-seen order.
func keepBest(recs []Recommendation) []Recommendation {
	index := make(map[string]int, len(recs))
	out := make([]Recommendation, 0, len(recs))
	for _, rec := range recs {
		if rec.FoodID == "" {
			continue
		}
		if i, ok := index[rec.FoodID]; ok {
			if rec.Score > out[i].Score {
				out[i] = rec
			}
			continue
		}
		index[rec.FoodID] = len(out)
		out = append(out, rec)
	}
	return out
}

// sortByScore orders descending by score, then by name
func sortByScore(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].FoodName < recs[j].FoodName
	})
}

func capList(recs []Recommendation, n int) []Recommendation {
	if len(recs) > n {
		return recs[:n]
	}
	return recs
}

// normalizeCategories trims, drops blanks and de-duplicates
func normalizeCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
