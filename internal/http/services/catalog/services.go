// Package catalog contains the public course-catalog services.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/dropDatabas3/learnhub/internal/store"
)

// ErrCourseNotFound: no published course exists under the given slug.
var ErrCourseNotFound = errors.New("catalog: course not found")

// CourseDetail is a published course plus its attached materials.
type CourseDetail struct {
	Course  store.Course        `json:"course"`
	Content store.CourseContent `json:"content"`
}

// CourseService serves the published catalog.
type CourseService interface {
	List(ctx context.Context, category string, limit, offset int) ([]store.Course, error)
	GetBySlug(ctx context.Context, slug string) (*CourseDetail, error)
}

// Deps contains the dependencies for the catalog services.
type Deps struct {
	Courses store.CourseStore
	Content store.ContentStore
}

// Services groups the catalog-domain services.
type Services struct {
	Courses CourseService
}

// NewServices builds the catalog service aggregator.
func NewServices(d Deps) Services {
	return Services{
		Courses: &courseService{courses: d.Courses, content: d.Content},
	}
}

type courseService struct {
	courses store.CourseStore
	content store.ContentStore
}

func (s *courseService) List(ctx context.Context, category string, limit, offset int) ([]store.Course, error) {
	list, err := s.courses.ListPublished(ctx, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	if list == nil {
		list = []store.Course{}
	}
	return list, nil
}

func (s *courseService) GetBySlug(ctx context.Context, slug string) (*CourseDetail, error) {
	c, err := s.courses.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	content, err := s.content.ListByCourse(ctx, c.ID.Hex())
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("list course content: %w", err)
	}
	if content == nil {
		content = &store.CourseContent{}
	}

	return &CourseDetail{Course: *c, Content: *content}, nil
}
