package router

import (
	"net/http"

	ctrl "github.com/dropDatabas3/learnhub/internal/http/controllers/me"
	mw "github.com/dropDatabas3/learnhub/internal/http/middlewares"
	"github.com/dropDatabas3/learnhub/internal/token"
)

// MeRouterDeps contains the dependencies for the profile routes.
type MeRouterDeps struct {
	Controller  *ctrl.Controller
	Issuer      *token.Issuer
	CORSOrigins []string
}

// RegisterMeRoutes registers the authenticated profile routes.
func RegisterMeRoutes(mux *http.ServeMux, deps MeRouterDeps) {
	c := deps.Controller

	// GET /api/me (requires Bearer access token)
	mux.Handle("GET /api/me", authedHandler(deps, http.HandlerFunc(c.Me)))

	// GET /api/me/payments (requires Bearer access token)
	mux.Handle("GET /api/me/payments", authedHandler(deps, http.HandlerFunc(c.Payments)))

	// DELETE /api/me (soft delete, requires Bearer access token)
	mux.Handle("DELETE /api/me", authedHandler(deps, http.HandlerFunc(c.Delete)))

	// Preflights carry no Authorization header, so they must not pass
	// through the auth middleware.
	for _, path := range []string{"/api/me", "/api/me/payments"} {
		mux.Handle("OPTIONS "+path, preflightHandler(deps, http.HandlerFunc(preflight)))
	}
}

// preflightHandler is authedHandler minus token auth.
func preflightHandler(deps MeRouterDeps, handler http.Handler) http.Handler {
	return mw.Chain(handler,
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithLogging(),
		mw.WithCORS(deps.CORSOrigins),
		mw.WithSecurityHeaders(),
	)
}

// authedHandler builds the chain for endpoints behind token auth.
// Logging sits right after the request id so rejections written by the
// auth middleware are logged too.
func authedHandler(deps MeRouterDeps, handler http.Handler) http.Handler {
	return mw.Chain(handler,
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithLogging(),
		mw.WithCORS(deps.CORSOrigins),
		mw.WithSecurityHeaders(),
		mw.WithNoStore(),
		mw.WithAuth(deps.Issuer),
	)
}
