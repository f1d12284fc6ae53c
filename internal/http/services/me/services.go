// Package me contains the authenticated-profile services.
package me

import (
	"context"
	"errors"
	"fmt"

	"github.com/dropDatabas3/learnhub/internal/store"
)

// ErrUserNotFound: the token was valid but the account no longer exists
// (deleted between issuance and request).
var ErrUserNotFound = errors.New("me: user not found")

// ProfileService serves the authenticated user's own data.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*store.User, error)
	Payments(ctx context.Context, userID string) ([]store.Payment, error)

	// Delete soft-deletes the account. The document is kept so payment
	// history stays attributable.
	Delete(ctx context.Context, userID string) error
}

// Deps contains the dependencies for the profile services.
type Deps struct {
	Users    store.UserStore
	Payments store.PaymentStore
}

// Services groups the me-domain services.
type Services struct {
	Profile ProfileService
}

// NewServices builds the me service aggregator.
func NewServices(d Deps) Services {
	return Services{
		Profile: &profileService{users: d.Users, payments: d.Payments},
	}
}

type profileService struct {
	users    store.UserStore
	payments store.PaymentStore
}

func (s *profileService) Get(ctx context.Context, userID string) (*store.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (s *profileService) Delete(ctx context.Context, userID string) error {
	if err := s.users.SoftDelete(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("soft delete user: %w", err)
	}
	return nil
}

func (s *profileService) Payments(ctx context.Context, userID string) ([]store.Payment, error) {
	list, err := s.payments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	if list == nil {
		list = []store.Payment{}
	}
	return list, nil
}
