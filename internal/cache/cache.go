// Package cache provides a small key/value abstraction with memory and
// redis backends. The auth flow uses it for one-time CSRF state records;
// memory is fine for a single instance, redis when running more than one.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key does not exist (or already expired).
var ErrNotFound = errors.New("cache: key not found")

// Client defines the cache operations.
type Client interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key. ttl of 0 means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// TakeOne atomically reads and deletes key. Returns ErrNotFound when
	// the key is absent, so a value can be consumed exactly once.
	TakeOne(ctx context.Context, key string) (string, error)

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
