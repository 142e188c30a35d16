// Package analytics computes trend, similarity, user behavior and seasonal/regional views
// of the food graph.
package analytics

import (
	"go.uber.org/zap"

	"gourmet-graph/backend/internal/graph"
	"gourmet-graph/backend/pkg/logger"
)

// Analyzer runs analytics queries through a graph gateway and shapes the rows
type Analyzer struct {
	gw     graph.Gateway
	logger *zap.Logger
}

// NewAnalyzer creates an Analyzer
func NewAnalyzer(gw graph.Gateway) *Analyzer {
	return &Analyzer{
		gw:     gw,
		logger: logger.Named("analytics"),
	}
}
