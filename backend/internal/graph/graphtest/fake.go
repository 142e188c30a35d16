// Package graphtest provides a scripted in-memory graph.Gateway for tests.
package graphtest

import (
	"context"
	"sync"

	"gourmet-graph/backend/internal/graph"
	apperrors "gourmet-graph/backend/pkg/errors"
)

// Call records one gateway invocation
type Call struct {
	Kind  string // "all", "one" or "command"
	Query graph.Query
	Limit int
}

// Gateway answers queries by Query.Name with canned rows or errors.
// Unscripted queries return no rows.
type Gateway struct {
	mu      sync.Mutex
	rows    map[string][]graph.Row
	errs    map[string]error
	blocked map[string]bool
	calls   []Call
}

// New creates an empty scripted gateway
func New() *Gateway {
	return &Gateway{
		rows:    make(map[string][]graph.Row),
		errs:    make(map[string]error),
		blocked: make(map[string]bool),
	}
}

// On scripts the rows returned for a named query
func (g *Gateway) On(name string, rows ...graph.Row) *Gateway {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rows[name] = rows
	return g
}

// Fail scripts an error for a named query
func (g *Gateway) Fail(name string, err error) *Gateway {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.errs[name] = err
	return g
}

// Block makes a named query wait until its context is done
func (g *Gateway) Block(name string) *Gateway {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.blocked[name] = true
	return g
}

// QueryAll implements graph.Gateway
func (g *Gateway) QueryAll(ctx context.Context, q graph.Query, limit int) ([]graph.Row, error) {
	if limit < 1 {
		return nil, apperrors.NewValidationFailed("limit", "must be at least 1")
	}
	return g.answer(ctx, "all", q, limit)
}

// QueryOne implements graph.Gateway
func (g *Gateway) QueryOne(ctx context.Context, q graph.Query) (graph.Row, error) {
	rows, err := g.answer(ctx, "one", q, 1)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

// Command implements graph.Gateway
func (g *Gateway) Command(ctx context.Context, q graph.Query) (graph.Row, error) {
	rows, err := g.answer(ctx, "command", q, 1)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (g *Gateway) answer(ctx context.Context, kind string, q graph.Query, limit int) ([]graph.Row, error) {
	g.mu.Lock()
	g.calls = append(g.calls, Call{Kind: kind, Query: q, Limit: limit})
	blocked := g.blocked[q.Name]
	err := g.errs[q.Name]
	scripted := g.rows[q.Name]
	g.mu.Unlock()

	if blocked {
		<-ctx.Done()
		return nil, apperrors.NewUpstreamQueryFailed(q.Name, ctx.Err())
	}
	if err != nil {
		return nil, err
	}

	if len(scripted) > limit {
		scripted = scripted[:limit]
	}
	out := make([]graph.Row, 0, len(scripted))
	for _, row := range scripted {
		cp := make(graph.Row, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out = append(out, cp)
	}
	return out, nil
}

// Calls returns every recorded invocation in order
func (g *Gateway) Calls() []Call {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Call, len(g.calls))
	copy(out, g.calls)
	return out
}

// CallCount returns how many times a named query ran
func (g *Gateway) CallCount(name string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, c := range g.calls {
		if c.Query.Name == name {
			n++
		}
	}
	return n
}

// LastParams returns the parameters of the latest call to a named query
func (g *Gateway) LastParams(name string) map[string]interface{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := len(g.calls) - 1; i >= 0; i-- {
		if g.calls[i].Query.Name == name {
			return g.calls[i].Query.Params
		}
	}
	return nil
}
