package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "gourmet-graph/backend/pkg/errors"
)

const defaultTopViewed = 6

// ViewFood returns the food detail and counts the view
func (h *Handler) ViewFood(c *gin.Context) {
	food, err := h.catalog.ViewFood(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "view_food", err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (h *Handler) ViewCount(c *gin.Context) {
	id := c.Param("id")
	count, err := h.catalog.GetViewCount(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "view_count", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "viewCount": count})
}

func (h *Handler) IncrementView(c *gin.Context) {
	id := c.Param("id")
	count, err := h.catalog.IncrementViewCount(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "increment_view", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "viewCount": count})
}

// BatchIncrementViews handles POST /api/foods/views {"ids": [...]}
func (h *Handler) BatchIncrementViews(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, "batch_increment_views", apperrors.NewValidationFailed("ids", "must be a JSON array of food ids"))
		return
	}

	updated, err := h.catalog.BatchIncrementViewCounts(c.Request.Context(), req.IDs)
	if err != nil {
		h.respondError(c, "batch_increment_views", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (h *Handler) TopViewed(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultTopViewed)
	if err != nil {
		h.respondError(c, "top_viewed", err)
		return
	}

	foods, err := h.catalog.TopViewedFoods(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, "top_viewed", err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (h *Handler) Regions(c *gin.Context) {
	regions, err := h.catalog.ListRegions(c.Request.Context())
	if err != nil {
		h.respondError(c, "regions", err)
		return
	}
	c.JSON(http.StatusOK, regions)
}
