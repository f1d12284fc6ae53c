// Package redis implements the cache on go-redis. Keys are namespaced by
// an optional prefix so several services can share one instance.
package redis

import (
	"context"
	"time"

	rdb "github.com/redis/go-redis/v9"

	"github.com/dropDatabas3/learnhub/internal/cache"
)

type Cache struct {
	c      *rdb.Client
	prefix string
}

// New connects to addr/db. The connection is verified lazily via Ping.
func New(addr string, db int, prefix string) *Cache {
	return &Cache{
		c:      rdb.NewClient(&rdb.Options{Addr: addr, DB: db}),
		prefix: prefix,
	}
}

func (r *Cache) key(k string) string { return r.prefix + k }

func (r *Cache) Get(ctx context.Context, key string) (string, error) {
	v, err := r.c.Get(ctx, r.key(key)).Result()
	if err == rdb.Nil {
		return "", cache.ErrNotFound
	}
	return v, err
}

func (r *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.c.Set(ctx, r.key(key), value, ttl).Err()
}

func (r *Cache) Delete(ctx context.Context, key string) error {
	return r.c.Del(ctx, r.key(key)).Err()
}

func (r *Cache) TakeOne(ctx context.Context, key string) (string, error) {
	v, err := r.c.GetDel(ctx, r.key(key)).Result()
	if err == rdb.Nil {
		return "", cache.ErrNotFound
	}
	return v, err
}

func (r *Cache) Ping(ctx context.Context) error {
	return r.c.Ping(ctx).Err()
}

func (r *Cache) Close() error { return r.c.Close() }
