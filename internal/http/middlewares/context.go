package middlewares

import (
	"context"

	"github.com/dropDatabas3/learnhub/internal/token"
)

type ctxKey string

const (
	// ctxClaimsKey holds the verified access-token claims
	ctxClaimsKey ctxKey = "claims"
	// ctxRequestIDKey holds the request ID
	ctxRequestIDKey ctxKey = "request_id"
)

// withClaims injects verified claims into the context (internal, used by
// the auth middleware).
func withClaims(ctx context.Context, cl token.Claims) context.Context {
	return context.WithValue(ctx, ctxClaimsKey, cl)
}

// setRequestID injects the request ID into the context (internal).
func setRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey, requestID)
}

// GetClaims returns the verified token claims from the context.
// The second return is false when the auth middleware was not applied.
func GetClaims(ctx context.Context) (token.Claims, bool) {
	if v := ctx.Value(ctxClaimsKey); v != nil {
		if cl, ok := v.(token.Claims); ok {
			return cl, true
		}
	}
	return token.Claims{}, false
}

// GetUserID returns the authenticated user ID, or "" when anonymous.
func GetUserID(ctx context.Context) string {
	cl, ok := GetClaims(ctx)
	if !ok {
		return ""
	}
	return cl.ID
}

// GetRequestID returns the request ID from the context, or "".
func GetRequestID(ctx context.Context) string {
	if v := ctx.Value(ctxRequestIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
