package providers

import (
	"errors"
	"fmt"

	"golang.org/x/oauth2"
)

// Kind classifies adapter failures so the HTTP boundary can map them to
// distinct status codes instead of a uniform 500.
type Kind int

const (
	// KindTokenExchange: the provider rejected the code or returned no
	// access token. Usually a client problem (expired/reused code).
	KindTokenExchange Kind = iota + 1

	// KindProviderUnavailable: network failure or provider-side 5xx.
	KindProviderUnavailable

	// KindProfileFetch: the profile (or emails) call failed.
	KindProfileFetch
)

func (k Kind) String() string {
	switch k {
	case KindTokenExchange:
		return "token_exchange"
	case KindProviderUnavailable:
		return "provider_unavailable"
	case KindProfileFetch:
		return "profile_fetch"
	default:
		return "unknown"
	}
}

// Error wraps an upstream failure with the provider name and its kind.
// Adapters never swallow errors; everything propagates as *Error.
type Error struct {
	Provider string
	Kind     Kind
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s oauth %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a provider-tagged error.
func NewError(provider string, kind Kind, err error) *Error {
	return &Error{Provider: provider, Kind: kind, Err: err}
}

// KindOf extracts the Kind from err, or 0 when err is not a provider error.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

// ClassifyExchange maps an x/oauth2 Exchange failure to a Kind: provider
// 5xx and transport errors are outages, anything else means the code was
// rejected.
func ClassifyExchange(err error) Kind {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		if re.Response != nil && re.Response.StatusCode >= 500 {
			return KindProviderUnavailable
		}
		return KindTokenExchange
	}
	return KindProviderUnavailable
}
