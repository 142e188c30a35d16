// Package api exposes the analytics, recommendation and catalog operations over HTTP.
package api

import (
	"go.uber.org/zap"

	"gourmet-graph/backend/pkg/logger"
)

// Handler holds the services behind every route
type Handler struct {
	analytics AnalyticsService
	recs      RecommendationService
	catalog   CatalogService
	health    HealthChecker
	logger    *zap.Logger
}

// NewHandler creates a Handler
func NewHandler(analytics AnalyticsService, recs RecommendationService, catalog CatalogService, health HealthChecker) *Handler {
	return &Handler{
		analytics: analytics,
		recs:      recs,
		catalog:   catalog,
		health:    health,
		logger:    logger.Named("api"),
	}
}
