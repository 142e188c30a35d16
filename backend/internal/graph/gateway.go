package graph

import "context"

// Query is a parameterized Cypher statement. Caller input only travels in Params;
// Name labels the statement in logs and metrics.
type Query struct {
	Name   string
	Cypher string
	Params map[string]interface{}
}

// Row is one loosely-typed result record keyed by RETURN alias
type Row map[string]interface{}

// Gateway executes queries against the graph store. An empty result is not an error.
type Gateway interface {
	// QueryAll returns up to limit rows of a read query
	QueryAll(ctx context.Context, q Query, limit int) ([]Row, error)
	// QueryOne returns the first row of a read query, or nil
	QueryOne(ctx context.Context, q Query) (Row, error)
	// Command executes a write and returns its first row, or nil
	Command(ctx context.Context, q Query) (Row, error)
}
