package cache

import "context"

// Noop disables caching; every lookup misses
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Noop) Set(context.Context, string, []byte) error  { return nil }
func (Noop) Invalidate(context.Context, string) error   { return nil }
func (Noop) Backend() string                            { return "none" }
