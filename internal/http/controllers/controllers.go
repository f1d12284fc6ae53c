// Package controllers is the composition root for the HTTP controllers.
//
// Each domain lives in its own sub-package with a Deps/NewControllers (or
// NewController) constructor taking that domain's services. This file only
// aggregates them so the server wiring deals with a single value.
package controllers

import (
	authctrl "github.com/dropDatabas3/learnhub/internal/http/controllers/auth"
	catalogctrl "github.com/dropDatabas3/learnhub/internal/http/controllers/catalog"
	healthctrl "github.com/dropDatabas3/learnhub/internal/http/controllers/health"
	mectrl "github.com/dropDatabas3/learnhub/internal/http/controllers/me"
	authsvc "github.com/dropDatabas3/learnhub/internal/http/services/auth"
	catalogsvc "github.com/dropDatabas3/learnhub/internal/http/services/catalog"
	mesvc "github.com/dropDatabas3/learnhub/internal/http/services/me"
)

// Services collects the per-domain service aggregators.
type Services struct {
	Auth    authsvc.Services
	Me      mesvc.Services
	Catalog catalogsvc.Services
}

// Controllers collects the per-domain controller aggregators.
type Controllers struct {
	Auth    *authctrl.Controllers
	Me      *mectrl.Controller
	Catalog *catalogctrl.Controller
	Health  *healthctrl.Controller
}

// New builds every controller from the given services. Health checks are
// registered separately because they depend on infrastructure, not
// services.
func New(s Services, health map[string]healthctrl.Pinger) *Controllers {
	return &Controllers{
		Auth:    authctrl.NewControllers(s.Auth),
		Me:      mectrl.NewController(s.Me.Profile),
		Catalog: catalogctrl.NewController(s.Catalog.Courses),
		Health:  healthctrl.NewController(health),
	}
}
