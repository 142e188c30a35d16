package graph

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"gourmet-graph/backend/internal/constants"
	"gourmet-graph/backend/internal/metrics"
	"gourmet-graph/backend/pkg/config"
	apperrors "gourmet-graph/backend/pkg/errors"
	"gourmet-graph/backend/pkg/logger"
)

// Options tune a Repository. Zero values fall back to defaults.
type Options struct {
	Database                string
	QueryTimeout            time.Duration
	BreakerFailureThreshold uint32
	BreakerOpenTimeout      time.Duration
}

// Repository is the Neo4j-backed Gateway. It owns the driver and its connection pool.
type Repository struct {
	driver   neo4j.DriverWithContext
	database string
	timeout  time.Duration
	breaker  *gobreaker.CircuitBreaker[[]Row]
	logger   *zap.Logger
}

// NewDriver creates a Neo4j driver from configuration and verifies connectivity
func NewDriver(ctx context.Context, cfg *config.Config) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
		func(c *neo4j.Config) {
			c.MaxConnectionPoolSize = cfg.Neo4jMaxPoolSize
			c.SocketConnectTimeout = cfg.QueryTimeout
		},
	)
	if err != nil {
		return nil, apperrors.NewGraphConnectionFailed(cfg.Neo4jURI, err)
	}

	vctx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
	defer cancel()
	if err := driver.VerifyConnectivity(vctx); err != nil {
		_ = driver.Close(ctx)
		return nil, apperrors.NewGraphConnectionFailed(cfg.Neo4jURI, err)
	}

	return driver, nil
}

// NewRepository creates a new graph repository
func NewRepository(driver neo4j.DriverWithContext, opts Options) *Repository {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = constants.DefaultQueryTimeout
	}
	if opts.BreakerFailureThreshold == 0 {
		opts.BreakerFailureThreshold = 5
	}
	if opts.BreakerOpenTimeout <= 0 {
		opts.BreakerOpenTimeout = 30 * time.Second
	}

	log := logger.Named("graph")
	threshold := opts.BreakerFailureThreshold

	breaker := gobreaker.NewCircuitBreaker[[]Row](gobreaker.Settings{
		Name:        "neo4j",
		MaxRequests: 1,
		Timeout:     opts.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A caller walking away is not a backend failure
		IsSuccessful: func(err error) bool {
			return err == nil || stderrors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Graph circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Repository{
		driver:   driver,
		database: opts.Database,
		timeout:  opts.QueryTimeout,
		breaker:  breaker,
		logger:   log,
	}
}

// Close closes the Neo4j driver connection
func (r *Repository) Close(ctx context.Context) error {
	return r.driver.Close(ctx)
}

// Ping verifies the store is reachable within the query timeout
func (r *Repository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.driver.VerifyConnectivity(ctx)
}

// BreakerState reports the circuit breaker state (closed, half-open, open)
func (r *Repository) BreakerState() string {
	return r.breaker.State().String()
}

// QueryAll returns up to limit rows of a read query
func (r *Repository) QueryAll(ctx context.Context, q Query, limit int) ([]Row, error) {
	if limit < 1 {
		return nil, apperrors.NewValidationFailed("limit", "must be at least 1")
	}
	return r.run(ctx, q, neo4j.AccessModeRead, limit)
}

// QueryOne returns the first row of a read query, or nil when nothing matched
func (r *Repository) QueryOne(ctx context.Context, q Query) (Row, error) {
	rows, err := r.run(ctx, q, neo4j.AccessModeRead, 1)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

// Command executes a write and returns its first row, or nil when nothing matched
func (r *Repository) Command(ctx context.Context, q Query) (Row, error) {
	rows, err := r.run(ctx, q, neo4j.AccessModeWrite, 1)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (r *Repository) run(ctx context.Context, q Query, mode neo4j.AccessMode, limit int) ([]Row, error) {
	modeLabel := "read"
	if mode == neo4j.AccessModeWrite {
		modeLabel = "write"
	}

	start := time.Now()
	rows, err := r.breaker.Execute(func() ([]Row, error) {
		qctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()
		return r.execute(qctx, q, mode, limit)
	})
	metrics.GraphQueryDuration.WithLabelValues(q.Name, modeLabel).Observe(time.Since(start).Seconds())

	if err != nil {
		reason, cause := r.classify(q, err)
		metrics.GraphQueryErrors.WithLabelValues(q.Name, reason).Inc()
		r.logger.Error("Graph query failed",
			zap.String("query", q.Name),
			zap.String("mode", modeLabel),
			zap.String("reason", reason),
			zap.Error(err),
		)
		return nil, apperrors.NewUpstreamQueryFailed(q.Name, cause)
	}

	r.logger.Debug("Graph query executed",
		zap.String("query", q.Name),
		zap.Int("rows", len(rows)),
		zap.Duration("latency", time.Since(start)),
	)
	return rows, nil
}

func (r *Repository) execute(ctx context.Context, q Query, mode neo4j.AccessMode, limit int) ([]Row, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: r.database,
	})
	defer session.Close(ctx)

	result, err := session.Run(ctx, q.Cypher, q.Params)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	rows := make([]Row, 0)
	for len(rows) < limit && result.Next(ctx) {
		rows = append(rows, Row(result.Record().AsMap()))
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	if mode == neo4j.AccessModeWrite {
		if _, err := result.Consume(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit command: %w", err)
		}
	}

	return rows, nil
}

func (r *Repository) classify(q Query, err error) (string, error) {
	switch {
	case stderrors.Is(err, gobreaker.ErrOpenState), stderrors.Is(err, gobreaker.ErrTooManyRequests):
		return "breaker_open", err
	case stderrors.Is(err, context.DeadlineExceeded):
		timeout := apperrors.NewContextTimeout(q.Name, r.timeout)
		timeout.Err = err
		return "timeout", timeout
	case stderrors.Is(err, context.Canceled):
		return "canceled", err
	default:
		return "driver", err
	}
}
