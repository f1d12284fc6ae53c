// Package providers defines the social login provider abstraction.
//
// Each provider sub-package adapts one OAuth2 identity source (GitHub,
// Google, Facebook) to a common contract: build an authorization URL,
// exchange a callback code for the provider's access token, fetch the
// profile, and normalize it into a Profile.
package providers

import (
	"context"
	"net/http"
	"time"
)

// Known provider names.
const (
	GitHub   = "github"
	Google   = "google"
	Facebook = "facebook"
)

// Profile is the normalized identity every adapter produces.
// Provider plus ID form a stable identity key: the same external account
// always normalizes to the same pair.
type Profile struct {
	// ID is the provider-scoped external user id, never our own user id.
	ID       string
	Name     string
	Email    string // may be empty; GitHub users can withhold it
	Picture  string
	Provider string

	// AccessToken is the provider's own token. It is only used to fetch
	// the profile and is never embedded in application tokens.
	AccessToken string
}

// Provider is the adapter contract.
type Provider interface {
	// Name returns the provider identifier ("github", "google", "facebook").
	Name() string

	// AuthURL builds the provider's authorization URL carrying the given
	// CSRF state. Side-effect free.
	AuthURL(state string) string

	// UserData exchanges the authorization code, fetches the profile and
	// normalizes it. Errors are always *Error with provider context.
	UserData(ctx context.Context, code string) (*Profile, error)
}

// Config carries the per-provider credentials. All three fields are
// required; constructors reject incomplete configs so misconfiguration
// surfaces at startup.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string

	// HTTPClient overrides the default 10s-timeout client. Tests use it
	// to point adapters at local stub servers.
	HTTPClient *http.Client
}

// DefaultHTTPClient is used when Config.HTTPClient is nil.
func DefaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}
