package cache

import (
	"context"
	"sync"
	"time"

	"gourmet-graph/backend/internal/constants"
	"gourmet-graph/backend/internal/metrics"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is a process-local TTL cache. Expired entries are dropped on read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an in-memory store with the given entry lifetime
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = constants.DefaultCacheTTL
	}
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns a live entry
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if ok && m.now().After(e.expiresAt) {
		m.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it
		if cur, still := m.entries[key]; still && m.now().After(cur.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		ok = false
	}

	metrics.RecordCacheLookup(m.Backend(), ok)
	if !ok {
		return nil, false
	}
	return e.data, true
}

// Set stores a copy of value
func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	data := make([]byte, len(value))
	copy(data, value)

	m.mu.Lock()
	m.entries[key] = entry{data: data, expiresAt: m.now().Add(m.ttl)}
	m.mu.Unlock()
	return nil
}

// Invalidate drops key
func (m *MemoryStore) Invalidate(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()

	metrics.CacheInvalidations.WithLabelValues(m.Backend()).Inc()
	return nil
}

// Len reports the number of stored entries, expired ones included
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *MemoryStore) Backend() string { return "memory" }
