package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dropDatabas3/learnhub/internal/cache"
	"github.com/dropDatabas3/learnhub/internal/cache/memory"
)

func TestSetGetDelete(t *testing.T) {
	ctx := context.Background()
	m := memory.New(time.Minute)

	if _, err := m.Get(ctx, "missing"); !errors.Is(err, cache.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := m.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err := m.Get(ctx, "k")
	if err != nil || v != "v" {
		t.Fatalf("get: %q %v", v, err)
	}

	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := m.Get(ctx, "k"); !errors.Is(err, cache.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestTakeOne_ConsumesExactlyOnce(t *testing.T) {
	ctx := context.Background()
	m := memory.New(time.Minute)

	if err := m.Set(ctx, "state", "github", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	v, err := m.TakeOne(ctx, "state")
	if err != nil || v != "github" {
		t.Fatalf("first take: %q %v", v, err)
	}
	if _, err := m.TakeOne(ctx, "state"); !errors.Is(err, cache.ErrNotFound) {
		t.Fatalf("second take should miss, got %v", err)
	}
}

func TestTakeOne_Concurrent(t *testing.T) {
	ctx := context.Background()
	m := memory.New(time.Minute)
	_ = m.Set(ctx, "state", "x", time.Minute)

	var wg sync.WaitGroup
	wins := make(chan struct{}, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.TakeOne(ctx, "state"); err == nil {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	if got := len(wins); got != 1 {
		t.Fatalf("expected exactly one winner, got %d", got)
	}
}

func TestExpiry(t *testing.T) {
	ctx := context.Background()
	m := memory.New(time.Minute)

	if err := m.Set(ctx, "short", "v", 20*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	if _, err := m.Get(ctx, "short"); !errors.Is(err, cache.ErrNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
}
