// Package auth holds the wire types of the auth endpoints.
package auth

// TokenPairResponse is the success body of the callback and refresh
// endpoints. Field names are part of the public contract.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ProvidersResponse lists the enabled provider names.
type ProvidersResponse struct {
	Providers []string `json:"providers"`
}
