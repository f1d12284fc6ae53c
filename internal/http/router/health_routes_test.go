package router_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	healthctrl "github.com/dropDatabas3/learnhub/internal/http/controllers/health"
	"github.com/dropDatabas3/learnhub/internal/http/router"
	"github.com/dropDatabas3/learnhub/internal/metrics"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func newHealthMux(t *testing.T, reg *prometheus.Registry, deps map[string]healthctrl.Pinger) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	router.RegisterHealthRoutes(mux, router.HealthRouterDeps{
		Controller: healthctrl.NewController(deps),
		Registry:   reg,
	})
	return mux
}

func TestHealthRoutes_Healthz(t *testing.T) {
	mux := newHealthMux(t, nil, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"ok"`)
}

func TestHealthRoutes_Readyz(t *testing.T) {
	mux := newHealthMux(t, nil, map[string]healthctrl.Pinger{
		"mongo": stubPinger{},
		"cache": stubPinger{},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	down := newHealthMux(t, nil, map[string]healthctrl.Pinger{
		"mongo": stubPinger{err: errors.New("no reachable servers")},
	})

	rec = httptest.NewRecorder()
	down.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), `"down"`)
}

// Metrics are served from a dedicated registry, the same way the server
// wiring hands one to both metrics.Register and the router.
func TestHealthRoutes_MetricsFromDedicatedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, metrics.Register(reg))
	metrics.LoginAttempts.WithLabelValues("github", "success").Inc()

	mux := newHealthMux(t, reg, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "learnhub_login_attempts_total")
}
