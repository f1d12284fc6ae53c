package middlewares_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dropDatabas3/learnhub/internal/http/middlewares"
	"github.com/dropDatabas3/learnhub/internal/rate"
)

type blockedLimiter struct{}

func (blockedLimiter) Allow(context.Context, string) (rate.Result, error) {
	return rate.Result{Allowed: false, RetryAfter: 30 * time.Second}, nil
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string) (rate.Result, error) {
	return rate.Result{}, errors.New("redis: connection pool timeout")
}

func rateLimited(l rate.Limiter) (http.Handler, *bool) {
	ran := new(bool)
	h := middlewares.WithRateLimit(middlewares.RateLimitConfig{Limiter: l})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { *ran = true }),
	)
	return h, ran
}

func TestWithRateLimit_NoopLimiterPassesThrough(t *testing.T) {
	h, ran := rateLimited(rate.NoopLimiter{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/github", nil))

	if !*ran || rec.Code != http.StatusOK {
		t.Fatalf("ran = %v, status = %d", *ran, rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Remaining") == "" {
		t.Fatal("remaining header not set")
	}
}

func TestWithRateLimit_Blocked(t *testing.T) {
	h, ran := rateLimited(blockedLimiter{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/github", nil))

	if *ran {
		t.Fatal("handler ran past the limiter")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "30" {
		t.Fatalf("Retry-After = %q", rec.Header().Get("Retry-After"))
	}
	if rec.Header().Get("X-RateLimit-Reset") == "" {
		t.Fatal("reset header not set")
	}
}

func TestWithRateLimit_FailsOpen(t *testing.T) {
	h, ran := rateLimited(brokenLimiter{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/github", nil))

	if !*ran || rec.Code != http.StatusOK {
		t.Fatalf("ran = %v, status = %d", *ran, rec.Code)
	}
}

func TestWithRateLimit_NilLimiterIsTransparent(t *testing.T) {
	h, ran := rateLimited(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/github", nil))

	if !*ran || rec.Code != http.StatusOK {
		t.Fatalf("ran = %v, status = %d", *ran, rec.Code)
	}
}
