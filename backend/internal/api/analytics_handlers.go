package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gourmet-graph/backend/internal/constants"
)

// Trends handles GET /api/food-analytics/trends?days=30
func (h *Handler) Trends(c *gin.Context) {
	days, err := queryInt(c, "days", constants.DashboardTrendDays)
	if err != nil {
		h.respondError(c, "trends", err)
		return
	}

	trends, err := h.analytics.AnalyzeTrends(c.Request.Context(), days)
	if err != nil {
		h.respondError(c, "trends", err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// UserBehavior handles GET /api/food-analytics/user-behavior/:userId
func (h *Handler) UserBehavior(c *gin.Context) {
	profile, err := h.analytics.ProfileUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.respondError(c, "user_behavior", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Similarity handles GET /api/food-analytics/similarity/:foodId
func (h *Handler) Similarity(c *gin.Context) {
	matrix, err := h.analytics.SimilarFoods(c.Request.Context(), c.Param("foodId"))
	if err != nil {
		h.respondError(c, "similarity", err)
		return
	}
	c.JSON(http.StatusOK, matrix)
}

// Seasonal handles GET /api/food-analytics/seasonal?season=summer
func (h *Handler) Seasonal(c *gin.Context) {
	foods, err := h.analytics.SeasonalRecommendations(c.Request.Context(), c.Query("season"))
	if err != nil {
		h.respondError(c, "seasonal", err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// RegionalAge handles GET /api/food-analytics/regional-age
func (h *Handler) RegionalAge(c *gin.Context) {
	stats, err := h.analytics.RegionalAgeStatistics(c.Request.Context())
	if err != nil {
		h.respondError(c, "regional_age", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Dashboard handles GET /api/food-analytics/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	dashboard, err := h.analytics.Dashboard(c.Request.Context())
	if err != nil {
		h.respondError(c, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
