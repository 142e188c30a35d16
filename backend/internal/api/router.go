package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterConfig wires the router
type RouterConfig struct {
	Handler        *Handler
	Logger         *zap.Logger
	AllowedOrigins []string
}

// NewRouter builds the gin engine with middleware and every route registered
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.Use(AccessLog(cfg.Logger))
	router.Use(gin.Recovery())
	router.Use(CORS(cfg.AllowedOrigins))

	h := cfg.Handler

	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		analytics := api.Group("/food-analytics")
		analytics.GET("/trends", h.Trends)
		analytics.GET("/user-behavior/:userId", h.UserBehavior)
		analytics.GET("/similarity/:foodId", h.Similarity)
		analytics.GET("/seasonal", h.Seasonal)
		analytics.GET("/regional-age", h.RegionalAge)
		analytics.GET("/dashboard", h.Dashboard)

		recs := api.Group("/food-recommendations")
		recs.GET("/age-based", h.AgeBased)
		recs.GET("/category-region", h.CategoryRegion)
		recs.GET("/most-viewed", h.MostViewed)
		recs.GET("/statistics", h.TypeStatistics)
		recs.GET("/popular-by-age", h.PopularByAge)
		recs.GET("/within-2-steps/:foodName", h.WithinTwoSteps)
		recs.GET("/influential-users", h.InfluentialUsers)
		recs.GET("/personalized", h.Personalized)

		foods := api.Group("/foods")
		foods.GET("/top-viewed", h.TopViewed)
		foods.GET("/regions", h.Regions)
		foods.POST("/views", h.BatchIncrementViews)
		foods.GET("/:id", h.ViewFood)
		foods.GET("/:id/view-count", h.ViewCount)
		foods.POST("/:id/increment-view", h.IncrementView)
	}

	return router
}
