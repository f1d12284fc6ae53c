// Package health contains the liveness and readiness controllers.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/dropDatabas3/learnhub/internal/http/helpers"
	"github.com/dropDatabas3/learnhub/internal/observability/logger"
)

// Pinger is anything with a health check (mongo store, cache client).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Controller answers health probes. Liveness is unconditional; readiness
// pings every registered dependency.
type Controller struct {
	deps map[string]Pinger
}

// NewController creates a health Controller over the named dependencies.
func NewController(deps map[string]Pinger) *Controller {
	return &Controller{deps: deps}
}

// Healthz handles GET /healthz
func (c *Controller) Healthz(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz handles GET /readyz
func (c *Controller) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	log := logger.From(r.Context()).With(logger.Op("HealthController.Readyz"))

	checks := make(map[string]string, len(c.deps))
	ready := true
	for name, p := range c.deps {
		if err := p.Ping(ctx); err != nil {
			log.Warn("dependency not ready", logger.String("dependency", name), logger.Err(err))
			checks[name] = "down"
			ready = false
			continue
		}
		checks[name] = "up"
	}

	status := http.StatusOK
	state := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		state = "not_ready"
	}

	helpers.WriteJSON(w, status, map[string]any{"status": state, "checks": checks})
}
