package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gourmet-graph/backend/internal/constants"
	"gourmet-graph/backend/internal/recommend"
)

func (h *Handler) AgeBased(c *gin.Context) {
	age, err := requiredQueryInt(c, "userAge")
	if err != nil {
		h.respondError(c, "age_based", err)
		return
	}

	recs, err := h.recs.AgeDifference(c.Request.Context(), age)
	if err != nil {
		h.respondError(c, "age_based", err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *Handler) CategoryRegion(c *gin.Context) {
	recs, err := h.recs.CategoryRegion(c.Request.Context(), c.Query("userRegion"), queryList(c, "categories"))
	if err != nil {
		h.respondError(c, "category_region", err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *Handler) MostViewed(c *gin.Context) {
	limit, err := queryInt(c, "limit", constants.DefaultListLimit)
	if err != nil {
		h.respondError(c, "most_viewed", err)
		return
	}

	recs, err := h.recs.MostViewed(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, "most_viewed", err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *Handler) TypeStatistics(c *gin.Context) {
	stats, err := h.recs.TypeStatistics(c.Request.Context())
	if err != nil {
		h.respondError(c, "type_statistics", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) PopularByAge(c *gin.Context) {
	recs, err := h.recs.PopularByAgeGroup(c.Request.Context())
	if err != nil {
		h.respondError(c, "popular_by_age", err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *Handler) WithinTwoSteps(c *gin.Context) {
	recs, err := h.recs.TwoHop(c.Request.Context(), c.Param("foodName"))
	if err != nil {
		h.respondError(c, "within_two_steps", err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *Handler) InfluentialUsers(c *gin.Context) {
	limit, err := queryInt(c, "limit", constants.DefaultListLimit)
	if err != nil {
		h.respondError(c, "influential_users", err)
		return
	}

	users, err := h.recs.InfluentialUsers(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, "influential_users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Personalized handles GET /api/food-recommendations/personalized
func (h *Handler) Personalized(c *gin.Context) {
	age, err := requiredQueryInt(c, "userAge")
	if err != nil {
		h.respondError(c, "personalized", err)
		return
	}

	recs, err := h.recs.Personalized(c.Request.Context(), recommend.PersonalizedRequest{
		UserID:     c.Query("userId"),
		Age:        age,
		Region:     c.Query("userRegion"),
		Categories: queryList(c, "categories"),
	})
	if err != nil {
		h.respondError(c, "personalized", err)
		return
	}
	c.JSON(http.StatusOK, recs)
}
