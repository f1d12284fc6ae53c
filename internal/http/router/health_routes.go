package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	ctrl "github.com/dropDatabas3/learnhub/internal/http/controllers/health"
	mw "github.com/dropDatabas3/learnhub/internal/http/middlewares"
)

// HealthRouterDeps contains the dependencies for the probe routes.
type HealthRouterDeps struct {
	Controller *ctrl.Controller
	Registry   *prometheus.Registry // nil uses the default gatherer
}

// RegisterHealthRoutes registers liveness, readiness and metrics.
// Probes skip the logging middleware, they fire every few seconds.
func RegisterHealthRoutes(mux *http.ServeMux, deps HealthRouterDeps) {
	c := deps.Controller

	mux.Handle("GET /healthz", mw.ChainFunc(c.Healthz, mw.WithRecover()))
	mux.Handle("GET /readyz", mw.ChainFunc(c.Readyz, mw.WithRecover()))

	var metricsHandler http.Handler
	if deps.Registry != nil {
		metricsHandler = promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})
	} else {
		metricsHandler = promhttp.Handler()
	}
	mux.Handle("GET /metrics", mw.Chain(metricsHandler, mw.WithRecover()))
}
