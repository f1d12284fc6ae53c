// Package me contains the authenticated-profile controllers.
package me

import (
	"errors"
	"net/http"

	httperrors "github.com/dropDatabas3/learnhub/internal/http/errors"
	"github.com/dropDatabas3/learnhub/internal/http/helpers"
	"github.com/dropDatabas3/learnhub/internal/http/middlewares"
	svc "github.com/dropDatabas3/learnhub/internal/http/services/me"
	"github.com/dropDatabas3/learnhub/internal/observability/logger"
)

// Controller serves the authenticated user's own resources. It always runs
// behind the auth middleware, so an absent user ID is a wiring bug.
type Controller struct {
	service svc.ProfileService
}

// NewController creates a new profile Controller.
func NewController(service svc.ProfileService) *Controller {
	return &Controller{service: service}
}

// Me handles GET /api/me
func (c *Controller) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("MeController.Me"))

	userID := middlewares.GetUserID(ctx)
	if userID == "" {
		httperrors.WriteError(w, httperrors.ErrUnauthorized)
		return
	}

	user, err := c.service.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, svc.ErrUserNotFound) {
			httperrors.WriteError(w, httperrors.ErrUserNotFound)
			return
		}
		log.Error("profile lookup failed", logger.UserID(userID), logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
		return
	}

	helpers.WriteJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /api/me
func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("MeController.Delete"))

	userID := middlewares.GetUserID(ctx)
	if userID == "" {
		httperrors.WriteError(w, httperrors.ErrUnauthorized)
		return
	}

	if err := c.service.Delete(ctx, userID); err != nil {
		if errors.Is(err, svc.ErrUserNotFound) {
			httperrors.WriteError(w, httperrors.ErrUserNotFound)
			return
		}
		log.Error("account deletion failed", logger.UserID(userID), logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
		return
	}

	log.Info("account soft deleted", logger.UserID(userID))
	w.WriteHeader(http.StatusNoContent)
}

// Payments handles GET /api/me/payments
func (c *Controller) Payments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("MeController.Payments"))

	userID := middlewares.GetUserID(ctx)
	if userID == "" {
		httperrors.WriteError(w, httperrors.ErrUnauthorized)
		return
	}

	payments, err := c.service.Payments(ctx, userID)
	if err != nil {
		log.Error("payment history failed", logger.UserID(userID), logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]any{"payments": payments})
}
