package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	catalogctrl "github.com/dropDatabas3/learnhub/internal/http/controllers/catalog"
	"github.com/dropDatabas3/learnhub/internal/http/router"
	catalogsvc "github.com/dropDatabas3/learnhub/internal/http/services/catalog"
	"github.com/dropDatabas3/learnhub/internal/store"
)

type stubCourseStore struct {
	courses []store.Course

	gotCategory string
	gotLimit    int
	gotOffset   int
}

func (s *stubCourseStore) Create(ctx context.Context, c *store.Course) error { return nil }

func (s *stubCourseStore) ListPublished(ctx context.Context, category string, limit, offset int) ([]store.Course, error) {
	s.gotCategory, s.gotLimit, s.gotOffset = category, limit, offset
	return s.courses, nil
}

func (s *stubCourseStore) FindBySlug(ctx context.Context, slug string) (*store.Course, error) {
	for i := range s.courses {
		if s.courses[i].Slug == slug {
			return &s.courses[i], nil
		}
	}
	return nil, store.ErrNotFound
}

type stubContentStore struct {
	content map[string]*store.CourseContent
}

func (s *stubContentStore) ListByCourse(ctx context.Context, courseID string) (*store.CourseContent, error) {
	c, ok := s.content[courseID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func newCatalogMux(t *testing.T, courses *stubCourseStore, content *stubContentStore) *http.ServeMux {
	t.Helper()
	if content == nil {
		content = &stubContentStore{}
	}
	services := catalogsvc.NewServices(catalogsvc.Deps{Courses: courses, Content: content})

	mux := http.NewServeMux()
	router.RegisterCatalogRoutes(mux, router.CatalogRouterDeps{
		Controller: catalogctrl.NewController(services.Courses),
	})
	return mux
}

func TestCatalogRoutes_List(t *testing.T) {
	courses := &stubCourseStore{courses: []store.Course{
		{Title: "Go for Backend Developers", Slug: "go-for-backend-developers", Price: 49.99},
	}}
	mux := newCatalogMux(t, courses, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses?category=backend&limit=10&offset=20", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, "backend", courses.gotCategory)
	require.Equal(t, 10, courses.gotLimit)
	require.Equal(t, 20, courses.gotOffset)

	var body struct {
		Courses []store.Course `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Courses, 1)
	require.Equal(t, "go-for-backend-developers", body.Courses[0].Slug)
}

func TestCatalogRoutes_ListEmptyIsAnArray(t *testing.T) {
	mux := newCatalogMux(t, &stubCourseStore{}, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"courses":[]`)
}

func TestCatalogRoutes_GetBySlug(t *testing.T) {
	course := store.Course{Title: "MongoDB Data Modeling", Slug: "mongodb-data-modeling", IsPublished: true}
	courses := &stubCourseStore{courses: []store.Course{course}}
	content := &stubContentStore{content: map[string]*store.CourseContent{
		course.ID.Hex(): {Videos: []store.Video{{Title: "Schemas", Duration: 300}}},
	}}
	mux := newCatalogMux(t, courses, content)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses/mongodb-data-modeling", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body catalogsvc.CourseDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "MongoDB Data Modeling", body.Course.Title)
	require.Len(t, body.Content.Videos, 1)
}

func TestCatalogRoutes_GetUnknownSlug(t *testing.T) {
	mux := newCatalogMux(t, &stubCourseStore{}, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "COURSE_NOT_FOUND", body["code"])
}

func TestCatalogRoutes_CourseWithoutContent(t *testing.T) {
	courses := &stubCourseStore{courses: []store.Course{
		{Title: "Standalone", Slug: "standalone"},
	}}
	mux := newCatalogMux(t, courses, &stubContentStore{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses/standalone", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body catalogsvc.CourseDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Empty(t, body.Content.Videos)
	require.Empty(t, body.Content.PDFs)
}
