package auth

import (
	"errors"
	"net/http"

	httperrors "github.com/dropDatabas3/learnhub/internal/http/errors"
	svc "github.com/dropDatabas3/learnhub/internal/http/services/auth"
	"github.com/dropDatabas3/learnhub/internal/observability/logger"
)

// StartController handles the social login entry endpoint.
type StartController struct {
	service svc.LoginService
}

// NewStartController creates a new StartController.
func NewStartController(service svc.LoginService) *StartController {
	return &StartController{service: service}
}

// Start handles GET /api/auth/{provider}
func (c *StartController) Start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("StartController.Start"))

	provider := r.PathValue("provider")
	if provider == "" {
		log.Warn("missing provider in path")
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("missing provider"))
		return
	}

	result, err := c.service.Start(ctx, provider)
	if err != nil {
		log.Warn("start failed", logger.Provider(provider), logger.Err(err))

		if errors.Is(err, svc.ErrUnknownProvider) {
			httperrors.WriteError(w, httperrors.ErrInvalidProvider)
			return
		}
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
		return
	}

	// No caching on either side of the redirect.
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")

	http.Redirect(w, r, result.RedirectURL, http.StatusFound)

	log.Debug("redirect to provider", logger.Provider(provider))
}
