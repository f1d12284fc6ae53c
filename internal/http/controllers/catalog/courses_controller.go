// Package catalog contains the public catalog controllers.
package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	httperrors "github.com/dropDatabas3/learnhub/internal/http/errors"
	"github.com/dropDatabas3/learnhub/internal/http/helpers"
	svc "github.com/dropDatabas3/learnhub/internal/http/services/catalog"
	"github.com/dropDatabas3/learnhub/internal/observability/logger"
)

// Controller serves the published-course catalog.
type Controller struct {
	service svc.CourseService
}

// NewController creates a new catalog Controller.
func NewController(service svc.CourseService) *Controller {
	return &Controller{service: service}
}

// List handles GET /api/courses?category=&limit=&offset=
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("CatalogController.List"))

	q := r.URL.Query()
	category := strings.TrimSpace(q.Get("category"))
	limit := intQuery(q.Get("limit"), 0)
	offset := intQuery(q.Get("offset"), 0)

	courses, err := c.service.List(ctx, category, limit, offset)
	if err != nil {
		log.Error("course listing failed", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
		return
	}

	helpers.WriteJSON(w, http.StatusOK, map[string]any{"courses": courses})
}

// Get handles GET /api/courses/{slug}
func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("CatalogController.Get"))

	slug := r.PathValue("slug")
	if slug == "" {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("missing slug"))
		return
	}

	detail, err := c.service.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, svc.ErrCourseNotFound) {
			httperrors.WriteError(w, httperrors.ErrCourseNotFound)
			return
		}
		log.Error("course lookup failed", logger.String("slug", slug), logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
		return
	}

	helpers.WriteJSON(w, http.StatusOK, detail)
}

func intQuery(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
