// Package memory implements the cache on top of patrickmn/go-cache.
// In-process only; meant for development and single-instance deployments.
package memory

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dropDatabas3/learnhub/internal/cache"
)

type Mem struct {
	c *gocache.Cache
	// go-cache has no atomic get+delete; TakeOne needs this.
	mu sync.Mutex
}

// New creates a memory cache. Expired entries are swept every minute.
func New(defaultTTL time.Duration) *Mem {
	return &Mem{c: gocache.New(defaultTTL, time.Minute)}
}

func (m *Mem) Get(_ context.Context, key string) (string, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return "", cache.ErrNotFound
	}
	s, _ := v.(string)
	return s, nil
}

func (m *Mem) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	m.c.Set(key, value, ttl)
	return nil
}

func (m *Mem) Delete(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}

func (m *Mem) TakeOne(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, err := m.Get(ctx, key)
	if err != nil {
		return "", err
	}
	m.c.Delete(key)
	return v, nil
}

func (m *Mem) Ping(context.Context) error { return nil }

func (m *Mem) Close() error {
	m.c.Flush()
	return nil
}
