// Package token mints and validates the application's own access and
// refresh tokens. Two distinct HMAC secrets are used so a leaked access
// token can never be replayed as a refresh token and vice versa; the
// signature check fails before any claim is trusted.
package token

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// Claims is the user snapshot embedded in both token kinds.
type Claims struct {
	ID      string
	Email   string // omitted from the token when empty
	Name    string
	Picture string
}

// Pair is one access + refresh token set.
type Pair struct {
	AccessToken  string
	RefreshToken string
}

// Issuer signs and verifies application tokens.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte

	// TTLs are exported so tests can issue already-expired tokens.
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// NewIssuer builds an issuer. Both secrets are required and must differ.
func NewIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) (*Issuer, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, errors.New("token: both secrets are required")
	}
	if accessSecret == refreshSecret {
		return nil, errors.New("token: access and refresh secrets must differ")
	}
	if accessTTL == 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL == 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	}, nil
}

// IssueAccess signs a short-lived access token for c.
func (i *Issuer) IssueAccess(c Claims) (string, error) {
	return i.sign(c, i.accessSecret, i.AccessTTL)
}

// IssueRefresh signs a long-lived refresh token for c.
func (i *Issuer) IssueRefresh(c Claims) (string, error) {
	return i.sign(c, i.refreshSecret, i.RefreshTTL)
}

// IssuePair mints one access and one refresh token for c.
func (i *Issuer) IssuePair(c Claims) (Pair, error) {
	at, err := i.IssueAccess(c)
	if err != nil {
		return Pair{}, err
	}
	rt, err := i.IssueRefresh(c)
	if err != nil {
		return Pair{}, err
	}
	return Pair{AccessToken: at, RefreshToken: rt}, nil
}

func (i *Issuer) sign(c Claims, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwtv5.MapClaims{
		"id":      c.ID,
		"name":    c.Name,
		"picture": c.Picture,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	if c.Email != "" {
		claims["email"] = c.Email
	}
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return tk.SignedString(secret)
}

// VerifyAccess reports whether the access token has a valid signature and
// has not expired. Any parse/verification failure maps to false; nothing
// propagates past this boundary.
func (i *Issuer) VerifyAccess(token string) bool {
	_, ok := i.parse(token, i.accessSecret)
	return ok
}

// AccessClaims verifies an access token and returns its embedded claims.
func (i *Issuer) AccessClaims(token string) (Claims, bool) {
	return i.parse(token, i.accessSecret)
}

// Refresh validates a refresh token and mints a brand-new pair from the
// embedded claims. Returns nil on any verification failure: no partial
// result, no token reuse.
func (i *Issuer) Refresh(refreshToken string) *Pair {
	c, ok := i.parse(refreshToken, i.refreshSecret)
	if !ok {
		return nil
	}
	pair, err := i.IssuePair(c)
	if err != nil {
		return nil
	}
	return &pair
}

func (i *Issuer) parse(token string, secret []byte) (Claims, bool) {
	tok, err := jwtv5.Parse(token,
		func(*jwtv5.Token) (any, error) { return secret, nil },
		jwtv5.WithValidMethods([]string{"HS256"}),
		jwtv5.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return Claims{}, false
	}
	mc, ok := tok.Claims.(jwtv5.MapClaims)
	if !ok {
		return Claims{}, false
	}
	str := func(k string) string {
		s, _ := mc[k].(string)
		return s
	}
	c := Claims{
		ID:      str("id"),
		Email:   str("email"),
		Name:    str("name"),
		Picture: str("picture"),
	}
	if c.ID == "" {
		return Claims{}, false
	}
	return c, true
}
