package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Health reports graph connectivity, circuit breaker state and the cache backend
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	body := gin.H{
		"status":  "ok",
		"graph":   "up",
		"breaker": h.health.BreakerState(),
		"cache":   h.catalog.CacheBackend(),
	}

	if err := h.health.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", zap.Error(err))
		status = http.StatusServiceUnavailable
		body["status"] = "degraded"
		body["graph"] = "down"
	}

	c.JSON(status, body)
}
