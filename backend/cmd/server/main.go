package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gourmet-graph/backend/internal/analytics"
	"gourmet-graph/backend/internal/api"
	"gourmet-graph/backend/internal/cache"
	"gourmet-graph/backend/internal/catalog"
	"gourmet-graph/backend/internal/graph"
	"gourmet-graph/backend/internal/recommend"
	"gourmet-graph/backend/pkg/config"
	"gourmet-graph/backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	// Initialize logger
	if err := logger.Init(cfg.Env); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting HTTP API server...", zap.String("env", cfg.Env))

	ctx := context.Background()

	// Initialize Neo4j driver
	driver, err := graph.NewDriver(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to Neo4j", zap.Error(err))
	}
	graphRepo := graph.NewRepository(driver, repositoryOptions(cfg))
	defer graphRepo.Close(context.Background())

	if err := graph.EnsureSchema(ctx, graphRepo); err != nil {
		log.Fatal("Failed to ensure graph schema", zap.Error(err))
	}

	store, err := cache.New(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize cache", zap.Error(err), zap.String("backend", cfg.CacheBackend))
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	// Initialize services
	catalogSvc := catalog.NewService(graph.NewFoodStore(graphRepo), store)
	analyzer := analytics.NewAnalyzer(graphRepo)
	engine := recommend.NewEngine(graphRepo, recommend.Options{StrategyTimeout: cfg.StrategyTimeout})

	router := newRouter(cfg, log, api.NewHandler(analyzer, engine, catalogSvc, graphRepo))

	// Start server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started",
		zap.String("port", cfg.Port),
		zap.String("cache", store.Backend()),
	)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

func repositoryOptions(cfg *config.Config) graph.Options {
	return graph.Options{
		Database:                cfg.Neo4jDatabase,
		QueryTimeout:            cfg.QueryTimeout,
		BreakerFailureThreshold: cfg.BreakerFailureThreshold,
		BreakerOpenTimeout:      cfg.BreakerOpenTimeout,
	}
}

func newRouter(cfg *config.Config, log *zap.Logger, h *api.Handler) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(api.RouterConfig{
		Handler:        h,
		Logger:         log,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})
}
