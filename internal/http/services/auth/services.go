// Package auth contains the social-login services: the redirect/callback
// orchestration and token refresh.
package auth

import (
	"time"

	"github.com/dropDatabas3/learnhub/internal/cache"
	"github.com/dropDatabas3/learnhub/internal/providers"
	"github.com/dropDatabas3/learnhub/internal/store"
	"github.com/dropDatabas3/learnhub/internal/token"
)

// Deps contains the dependencies for building the auth services.
type Deps struct {
	Registry *providers.Registry // enabled provider adapters
	Cache    cache.Client        // one-time login state records
	Users    store.UserStore     // find-or-create on callback
	Issuer   *token.Issuer       // application token minting
	StateTTL time.Duration       // login state lifetime (default 5m)
}

// Services groups the auth-domain services.
type Services struct {
	Login   LoginService
	Refresh RefreshService
}

// NewServices builds the auth service aggregator.
func NewServices(d Deps) Services {
	if d.StateTTL <= 0 {
		d.StateTTL = 5 * time.Minute
	}
	return Services{
		Login: &loginService{
			registry: d.Registry,
			cache:    d.Cache,
			users:    d.Users,
			issuer:   d.Issuer,
			stateTTL: d.StateTTL,
		},
		Refresh: &refreshService{issuer: d.Issuer},
	}
}
