package router

import (
	"net/http"

	ctrl "github.com/dropDatabas3/learnhub/internal/http/controllers/catalog"
	mw "github.com/dropDatabas3/learnhub/internal/http/middlewares"
)

// CatalogRouterDeps contains the dependencies for the public catalog routes.
type CatalogRouterDeps struct {
	Controller  *ctrl.Controller
	CORSOrigins []string
}

// RegisterCatalogRoutes registers the published-course catalog routes.
func RegisterCatalogRoutes(mux *http.ServeMux, deps CatalogRouterDeps) {
	c := deps.Controller

	// GET /api/courses
	mux.Handle("GET /api/courses", publicHandler(deps, http.HandlerFunc(c.List)))

	// GET /api/courses/{slug}
	mux.Handle("GET /api/courses/{slug}", publicHandler(deps, http.HandlerFunc(c.Get)))

	for _, path := range []string{"/api/courses", "/api/courses/{slug}"} {
		mux.Handle("OPTIONS "+path, publicHandler(deps, http.HandlerFunc(preflight)))
	}
}

// publicHandler builds the chain for anonymous read endpoints.
func publicHandler(deps CatalogRouterDeps, handler http.Handler) http.Handler {
	return mw.Chain(handler,
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithLogging(),
		mw.WithCORS(deps.CORSOrigins),
		mw.WithSecurityHeaders(),
	)
}
