package cache

import (
	"context"
	"sync/atomic"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore is an in-process LRU cache with time-based expiration
type MemoryStore struct {
	lru    *expirable.LRU[string, []byte]
	prefix string
	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemoryStore creates a memory store with the configured size and TTL
func NewMemoryStore(cfg Config) *MemoryStore {
	return &MemoryStore{
		lru:    expirable.NewLRU[string, []byte](cfg.Size, nil, cfg.TTL),
		prefix: cfg.KeyPrefix,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.lru.Get(versionedKey(m.prefix, key))
	if !ok {
		m.misses.Add(1)
		return nil, false, nil
	}
	m.hits.Add(1)
	return v, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.lru.Add(versionedKey(m.prefix, key), value)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.lru.Remove(versionedKey(m.prefix, key))
	return nil
}

func (m *MemoryStore) Purge(_ context.Context) error {
	m.lru.Purge()
	return nil
}

func (m *MemoryStore) Stats() Stats {
	return Stats{
		Backend: BackendMemory,
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
		Size:    m.lru.Len(),
	}
}

func (m *MemoryStore) Close() error { return nil }
