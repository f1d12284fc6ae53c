// Package store defines the marketplace's persistent entities and the
// repository contracts the HTTP layer depends on. The mongo sub-package
// implements them; tests substitute in-memory fakes.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an entity does not exist.
var ErrNotFound = errors.New("store: not found")

// NewSocialUser carries the fields needed to provision a user from a
// normalized social profile.
type NewSocialUser struct {
	Name   string
	Email  string // may be empty
	Avatar string
	Link   ProviderLink
}

// UserStore persists users keyed by internal id, with the provider link
// array as the join used to find-or-create from a social identity.
type UserStore interface {
	// FindOrCreate resolves the user owning nu.Link, creating one on first
	// login. The implementation must be atomic per (provider, providerId)
	// so concurrent first logins cannot create duplicates.
	FindOrCreate(ctx context.Context, nu NewSocialUser) (*User, error)

	// FindByProvider finds a user by provider identity. ErrNotFound when absent.
	FindByProvider(ctx context.Context, provider, providerID string) (*User, error)

	FindByID(ctx context.Context, id string) (*User, error)

	// SoftDelete flags the user deleted; the document is kept.
	SoftDelete(ctx context.Context, id string) error
}

// CourseStore serves the public catalog.
type CourseStore interface {
	Create(ctx context.Context, c *Course) error
	ListPublished(ctx context.Context, category string, limit, offset int) ([]Course, error)
	FindBySlug(ctx context.Context, slug string) (*Course, error)
}

// PaymentStore records purchases.
type PaymentStore interface {
	Create(ctx context.Context, p *Payment) error
	ListByUser(ctx context.Context, userID string) ([]Payment, error)
}

// ContentStore serves a course's attached materials.
type ContentStore interface {
	ListByCourse(ctx context.Context, courseID string) (*CourseContent, error)
}
