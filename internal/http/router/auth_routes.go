package router

import (
	"net/http"

	ctrl "github.com/dropDatabas3/learnhub/internal/http/controllers/auth"
	mw "github.com/dropDatabas3/learnhub/internal/http/middlewares"
	"github.com/dropDatabas3/learnhub/internal/rate"
)

// AuthRouterDeps contains the dependencies for the auth routes.
type AuthRouterDeps struct {
	Controllers *ctrl.Controllers
	RateLimiter rate.Limiter // optional, keyed by client IP
	CORSOrigins []string
}

// RegisterAuthRoutes registers the social-login routes.
func RegisterAuthRoutes(mux *http.ServeMux, deps AuthRouterDeps) {
	c := deps.Controllers

	// GET /api/auth/providers -> enabled provider names
	mux.Handle("GET /api/auth/providers", authHandler(deps, http.HandlerFunc(c.Providers.List)))

	// GET /api/auth/{provider} -> 302 to the provider
	mux.Handle("GET /api/auth/{provider}", authHandler(deps, http.HandlerFunc(c.Start.Start)))

	// GET /api/auth/{provider}/callback -> token pair
	mux.Handle("GET /api/auth/{provider}/callback", authHandler(deps, http.HandlerFunc(c.Callback.Callback)))

	// POST /api/auth/refresh -> new token pair
	mux.Handle("POST /api/auth/refresh", authHandler(deps, http.HandlerFunc(c.Refresh.Refresh)))

	// Browser preflights must reach the CORS middleware.
	for _, path := range []string{
		"/api/auth/{provider}",
		"/api/auth/{provider}/callback",
		"/api/auth/providers",
		"/api/auth/refresh",
	} {
		mux.Handle("OPTIONS "+path, authHandler(deps, http.HandlerFunc(preflight)))
	}
}

// authHandler builds the middleware chain for the public auth endpoints.
func authHandler(deps AuthRouterDeps, handler http.Handler) http.Handler {
	// Logging right after the request id, so responses short-circuited
	// further in (a 429 from the limiter) are still logged.
	chain := []mw.Middleware{
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithLogging(),
		mw.WithCORS(deps.CORSOrigins),
		mw.WithSecurityHeaders(),
		mw.WithNoStore(),
	}

	if deps.RateLimiter != nil {
		chain = append(chain, mw.WithRateLimit(mw.RateLimitConfig{
			Limiter: deps.RateLimiter,
			KeyFunc: mw.IPOnlyRateKey,
		}))
	}

	return mw.Chain(handler, chain...)
}
