package auth

import (
	"errors"
	"net/http"
	"strings"

	dto "github.com/dropDatabas3/learnhub/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/learnhub/internal/http/errors"
	"github.com/dropDatabas3/learnhub/internal/http/helpers"
	svc "github.com/dropDatabas3/learnhub/internal/http/services/auth"
	"github.com/dropDatabas3/learnhub/internal/observability/logger"
	"github.com/dropDatabas3/learnhub/internal/providers"
)

// CallbackController handles the provider callback endpoint.
type CallbackController struct {
	service svc.LoginService
}

// NewCallbackController creates a new CallbackController.
func NewCallbackController(service svc.LoginService) *CallbackController {
	return &CallbackController{service: service}
}

// Callback handles GET /api/auth/{provider}/callback
func (c *CallbackController) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("CallbackController.Callback"))

	provider := r.PathValue("provider")
	if provider == "" {
		log.Warn("missing provider in path")
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("missing provider"))
		return
	}

	q := r.URL.Query()

	// The provider reports user denial and its own errors via ?error=.
	if idpError := strings.TrimSpace(q.Get("error")); idpError != "" {
		log.Warn("provider returned error",
			logger.Provider(provider),
			logger.String("error", idpError),
			logger.String("description", strings.TrimSpace(q.Get("error_description"))),
		)
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("provider error: "+idpError))
		return
	}

	pair, err := c.service.Callback(ctx, svc.CallbackRequest{
		Provider: provider,
		Code:     strings.TrimSpace(q.Get("code")),
		State:    strings.TrimSpace(q.Get("state")),
	})
	if err != nil {
		log.Warn("callback failed", logger.Provider(provider), logger.Err(err))
		writeCallbackError(w, err)
		return
	}

	// Tokens must never land in intermediary caches.
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")

	helpers.WriteJSON(w, http.StatusOK, dto.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})

	log.Debug("callback completed", logger.Provider(provider))
}

// writeCallbackError maps service and provider failures to statuses:
// client mistakes are 4xx, provider outages 502, everything else the
// generic 500.
func writeCallbackError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, svc.ErrUnknownProvider):
		httperrors.WriteError(w, httperrors.ErrInvalidProvider)
	case errors.Is(err, svc.ErrMissingCode):
		httperrors.WriteError(w, httperrors.ErrMissingCode)
	case errors.Is(err, svc.ErrInvalidState):
		httperrors.WriteError(w, httperrors.ErrInvalidState)
	default:
		switch providers.KindOf(err) {
		case providers.KindTokenExchange:
			httperrors.WriteError(w, httperrors.ErrCodeRejected.WithCause(err))
		case providers.KindProviderUnavailable:
			httperrors.WriteError(w, httperrors.ErrProviderUnavailable.WithCause(err))
		default:
			httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
		}
	}
}
