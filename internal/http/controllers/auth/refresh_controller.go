package auth

import (
	"net/http"
	"strings"

	dto "github.com/dropDatabas3/learnhub/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/learnhub/internal/http/errors"
	"github.com/dropDatabas3/learnhub/internal/http/helpers"
	svc "github.com/dropDatabas3/learnhub/internal/http/services/auth"
	"github.com/dropDatabas3/learnhub/internal/observability/logger"
)

// RefreshController handles token refresh.
type RefreshController struct {
	service svc.RefreshService
}

// NewRefreshController creates a new RefreshController.
func NewRefreshController(service svc.RefreshService) *RefreshController {
	return &RefreshController{service: service}
}

// Refresh handles POST /api/auth/refresh
func (c *RefreshController) Refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.From(r.Context()).With(logger.Layer("controller"), logger.Op("RefreshController.Refresh"))

	var req dto.RefreshRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	pair, err := c.service.Refresh(strings.TrimSpace(req.RefreshToken))
	if err != nil {
		// Uniform 401, no hints about why the token failed.
		log.Warn("refresh rejected")
		httperrors.WriteError(w, httperrors.ErrTokenInvalid)
		return
	}

	w.Header().Set("Cache-Control", "no-store")

	helpers.WriteJSON(w, http.StatusOK, dto.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
