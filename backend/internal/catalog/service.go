// Package catalog serves food details through a read-through cache and tracks views.
package catalog

import (
	"context"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"gourmet-graph/backend/internal/cache"
	"gourmet-graph/backend/internal/graph"
	"gourmet-graph/backend/pkg/logger"
	"gourmet-graph/backend/pkg/validation"
)

// FoodRepository is the subset of graph.FoodStore the catalog needs
type FoodRepository interface {
	GetFood(ctx context.Context, foodID string) (*graph.Food, error)
	GetViewCount(ctx context.Context, foodID string) (int64, error)
	IncrementViewCount(ctx context.Context, foodID string) (int64, error)
	BatchIncrementViewCounts(ctx context.Context, foodIDs []string) (int64, error)
	TopViewedFoods(ctx context.Context, limit int) ([]graph.FoodViews, error)
	ListRegions(ctx context.Context) ([]graph.Region, error)
}

// Service is the catalog entry point used by the HTTP layer
type Service struct {
	repo   FoodRepository
	cache  cache.Store
	logger *zap.Logger
}

// NewService creates a catalog service. A nil store disables caching.
func NewService(repo FoodRepository, store cache.Store) *Service {
	if store == nil {
		store = cache.Noop{}
	}
	return &Service{
		repo:   repo,
		cache:  store,
		logger: logger.Named("catalog"),
	}
}

type foodIDParams struct {
	FoodID string `json:"foodId" validate:"required"`
}

type limitParams struct {
	Limit int `json:"limit" validate:"min=1,max=100"`
}

type batchParams struct {
	IDs []string `json:"ids" validate:"max=100,dive,required"`
}

func foodKey(foodID string) string {
	return "food:" + foodID
}

// GetFood returns the food detail, serving from cache when possible
func (s *Service) GetFood(ctx context.Context, foodID string) (*graph.Food, error) {
	foodID = strings.TrimSpace(foodID)
	if err := validation.Struct(foodIDParams{FoodID: foodID}); err != nil {
		return nil, err
	}

	key := foodKey(foodID)
	if data, ok := s.cache.Get(ctx, key); ok {
		var food graph.Food
		if err := json.Unmarshal(data, &food); err == nil {
			return &food, nil
		}
		s.logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
		_ = s.cache.Invalidate(ctx, key)
	}

	food, err := s.repo.GetFood(ctx, foodID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(food); err == nil {
		if err := s.cache.Set(ctx, key, data); err != nil {
			s.logger.Warn("Failed to cache food", zap.String("food_id", foodID), zap.Error(err))
		}
	}
	return food, nil
}

// ViewFood records a view and returns the refreshed detail
func (s *Service) ViewFood(ctx context.Context, foodID string) (*graph.Food, error) {
	if _, err := s.IncrementViewCount(ctx, foodID); err != nil {
		return nil, err
	}
	return s.GetFood(ctx, foodID)
}

// IncrementViewCount adds one view and drops the cached detail before returning
func (s *Service) IncrementViewCount(ctx context.Context, foodID string) (int64, error) {
	foodID = strings.TrimSpace(foodID)
	if err := validation.Struct(foodIDParams{FoodID: foodID}); err != nil {
		return 0, err
	}

	count, err := s.repo.IncrementViewCount(ctx, foodID)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, foodID)
	return count, nil
}

// BatchIncrementViewCounts adds one view to each distinct id and returns how many foods matched
func (s *Service) BatchIncrementViewCounts(ctx context.Context, foodIDs []string) (int64, error) {
	ids := make([]string, 0, len(foodIDs))
	seen := make(map[string]bool, len(foodIDs))
	for _, id := range foodIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if err := validation.Struct(batchParams{IDs: ids}); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	updated, err := s.repo.BatchIncrementViewCounts(ctx, ids)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		s.invalidate(ctx, id)
	}

	s.logger.Debug("Batch view increment",
		zap.Int("requested", len(ids)),
		zap.Int64("updated", updated),
	)
	return updated, nil
}

// GetViewCount returns the view counter; unknown foods read as 0
func (s *Service) GetViewCount(ctx context.Context, foodID string) (int64, error) {
	foodID = strings.TrimSpace(foodID)
	if err := validation.Struct(foodIDParams{FoodID: foodID}); err != nil {
		return 0, err
	}
	return s.repo.GetViewCount(ctx, foodID)
}

// TopViewedFoods lists the most viewed foods
func (s *Service) TopViewedFoods(ctx context.Context, limit int) ([]graph.FoodViews, error) {
	if err := validation.Struct(limitParams{Limit: limit}); err != nil {
		return nil, err
	}
	return s.repo.TopViewedFoods(ctx, limit)
}

// ListRegions lists regions with their food counts
func (s *Service) ListRegions(ctx context.Context) ([]graph.Region, error) {
	return s.repo.ListRegions(ctx)
}

// CacheBackend names the active cache implementation
func (s *Service) CacheBackend() string {
	return s.cache.Backend()
}

func (s *Service) invalidate(ctx context.Context, foodID string) {
	if err := s.cache.Invalidate(ctx, foodKey(foodID)); err != nil {
		s.logger.Warn("Failed to invalidate cached food", zap.String("food_id", foodID), zap.Error(err))
	}
}
