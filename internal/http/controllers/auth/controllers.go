// Package auth groups the auth-domain controllers.
package auth

import (
	svc "github.com/dropDatabas3/learnhub/internal/http/services/auth"
)

// Controllers aggregates the auth controllers.
type Controllers struct {
	Start     *StartController
	Callback  *CallbackController
	Refresh   *RefreshController
	Providers *ProvidersController
}

// NewControllers builds the auth controller aggregator.
func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Start:     NewStartController(s.Login),
		Callback:  NewCallbackController(s.Login),
		Refresh:   NewRefreshController(s.Refresh),
		Providers: NewProvidersController(s.Login),
	}
}
