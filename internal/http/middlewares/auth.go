package middlewares

import (
	"net/http"
	"strings"

	"github.com/dropDatabas3/learnhub/internal/http/errors"
	"github.com/dropDatabas3/learnhub/internal/observability/logger"
	"github.com/dropDatabas3/learnhub/internal/token"
)

// WithAuth validates the Bearer access token and injects its claims into
// the request context. Missing or invalid tokens never reach the handler.
func WithAuth(issuer *token.Issuer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				errors.WriteError(w, errors.ErrTokenMissing)
				return
			}

			cl, ok := issuer.AccessClaims(raw)
			if !ok {
				errors.WriteError(w, errors.ErrTokenInvalid)
				return
			}

			ctx := withClaims(r.Context(), cl)
			// Downstream log lines carry the authenticated user.
			ctx = logger.ToContext(ctx, logger.From(ctx).With(logger.UserID(cl.ID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
