package auth

import (
	"net/http"

	dto "github.com/dropDatabas3/learnhub/internal/http/dto/auth"
	"github.com/dropDatabas3/learnhub/internal/http/helpers"
	svc "github.com/dropDatabas3/learnhub/internal/http/services/auth"
)

// ProvidersController exposes the enabled provider names so the web
// client can render its login buttons from the server config.
type ProvidersController struct {
	service svc.LoginService
}

// NewProvidersController creates a new ProvidersController.
func NewProvidersController(service svc.LoginService) *ProvidersController {
	return &ProvidersController{service: service}
}

// List handles GET /api/auth/providers
func (c *ProvidersController) List(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, dto.ProvidersResponse{
		Providers: c.service.Providers(),
	})
}
