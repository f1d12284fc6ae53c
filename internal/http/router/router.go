// Package router aggregates the route registrations.
package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dropDatabas3/learnhub/internal/http/controllers"
	"github.com/dropDatabas3/learnhub/internal/rate"
	"github.com/dropDatabas3/learnhub/internal/token"
)

// Deps contains everything the router needs. Controllers are built by the
// server wiring; the router only binds them to paths and chains.
type Deps struct {
	Mux *http.ServeMux

	Controllers *controllers.Controllers
	Issuer      *token.Issuer

	RateLimiter rate.Limiter // optional
	CORSOrigins []string

	Metrics *prometheus.Registry // nil uses the default gatherer
}

// preflight terminates OPTIONS requests that fall through the CORS
// middleware (non-browser clients probing with OPTIONS). Method-scoped
// mux patterns never match OPTIONS, so every route group registers this
// behind its own chain.
func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Register binds every route group onto the mux. Called once from the
// server wiring.
func Register(deps Deps) {
	mux := deps.Mux
	if mux == nil {
		return
	}

	RegisterAuthRoutes(mux, AuthRouterDeps{
		Controllers: deps.Controllers.Auth,
		RateLimiter: deps.RateLimiter,
		CORSOrigins: deps.CORSOrigins,
	})

	RegisterMeRoutes(mux, MeRouterDeps{
		Controller:  deps.Controllers.Me,
		Issuer:      deps.Issuer,
		CORSOrigins: deps.CORSOrigins,
	})

	RegisterCatalogRoutes(mux, CatalogRouterDeps{
		Controller:  deps.Controllers.Catalog,
		CORSOrigins: deps.CORSOrigins,
	})

	RegisterHealthRoutes(mux, HealthRouterDeps{
		Controller: deps.Controllers.Health,
		Registry:   deps.Metrics,
	})
}
