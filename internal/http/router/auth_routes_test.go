package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/learnhub/internal/cache/memory"
	authctrl "github.com/dropDatabas3/learnhub/internal/http/controllers/auth"
	"github.com/dropDatabas3/learnhub/internal/http/router"
	authsvc "github.com/dropDatabas3/learnhub/internal/http/services/auth"
	"github.com/dropDatabas3/learnhub/internal/providers"
	"github.com/dropDatabas3/learnhub/internal/store"
	"github.com/dropDatabas3/learnhub/internal/token"
)

type stubProvider struct {
	name    string
	profile *providers.Profile
	err     error
	calls   int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) AuthURL(state string) string {
	return "https://idp.example/authorize?client_id=cid&state=" + state
}

func (s *stubProvider) UserData(ctx context.Context, code string) (*providers.Profile, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

type stubUserStore struct {
	store.UserStore
}

func (s *stubUserStore) FindOrCreate(ctx context.Context, nu store.NewSocialUser) (*store.User, error) {
	return &store.User{
		ID:     "42",
		Name:   nu.Name,
		Email:  nu.Email,
		Avatar: nu.Avatar,
	}, nil
}

type authFixture struct {
	mux      *http.ServeMux
	issuer   *token.Issuer
	provider *stubProvider
}

func newAuthFixture(t *testing.T, p *stubProvider) *authFixture {
	t.Helper()

	issuer, err := token.NewIssuer("access-secret-1", "refresh-secret-2", time.Minute, time.Hour)
	require.NoError(t, err)

	c := memory.New(time.Minute)
	t.Cleanup(func() { _ = c.Close() })

	services := authsvc.NewServices(authsvc.Deps{
		Registry: providers.NewRegistry(p),
		Cache:    c,
		Users:    &stubUserStore{},
		Issuer:   issuer,
	})

	mux := http.NewServeMux()
	router.RegisterAuthRoutes(mux, router.AuthRouterDeps{
		Controllers: authctrl.NewControllers(services),
	})

	return &authFixture{mux: mux, issuer: issuer, provider: p}
}

func (f *authFixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

// startState drives GET /api/auth/{provider} and pulls the state out of
// the redirect Location.
func (f *authFixture) startState(t *testing.T, provider string) string {
	t.Helper()
	rec := f.get(t, "/api/auth/"+provider)
	require.Equal(t, http.StatusFound, rec.Code)

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	state := loc.Query().Get("state")
	require.NotEmpty(t, state)
	return state
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthRoutes_FullLoginFlow(t *testing.T) {
	f := newAuthFixture(t, &stubProvider{
		name: "github",
		profile: &providers.Profile{
			ID:       "gh-9001",
			Name:     "bob",
			Picture:  "http://x/a.png",
			Provider: "github",
		},
	})

	state := f.startState(t, "github")

	rec := f.get(t, "/api/auth/github/callback?code=abc&state="+state)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	body := decodeBody(t, rec)
	require.NotEmpty(t, body["accessToken"])
	require.NotEmpty(t, body["refreshToken"])

	claims, ok := f.issuer.AccessClaims(body["accessToken"])
	require.True(t, ok)
	require.Equal(t, "42", claims.ID)
	require.Equal(t, "bob", claims.Name)
	require.Equal(t, "http://x/a.png", claims.Picture)
	require.Empty(t, claims.Email)
}

func TestAuthRoutes_CallbackMissingCode(t *testing.T) {
	f := newAuthFixture(t, &stubProvider{name: "github", profile: &providers.Profile{Provider: "github"}})

	state := f.startState(t, "github")

	rec := f.get(t, "/api/auth/github/callback?state="+state)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Code is required", decodeBody(t, rec)["error"])
	require.Zero(t, f.provider.calls, "provider must not be contacted without a code")
}

func TestAuthRoutes_UnknownProvider(t *testing.T) {
	f := newAuthFixture(t, &stubProvider{name: "github"})

	rec := f.get(t, "/api/auth/myspace")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.get(t, "/api/auth/myspace/callback?code=abc&state=x")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "INVALID_PROVIDER", decodeBody(t, rec)["code"])
}

func TestAuthRoutes_StateReplayRejected(t *testing.T) {
	f := newAuthFixture(t, &stubProvider{
		name:    "github",
		profile: &providers.Profile{ID: "gh-1", Provider: "github"},
	})

	state := f.startState(t, "github")
	target := "/api/auth/github/callback?code=abc&state=" + state

	require.Equal(t, http.StatusOK, f.get(t, target).Code)

	rec := f.get(t, target)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "INVALID_STATE", decodeBody(t, rec)["code"])
}

func TestAuthRoutes_ProviderErrorStatuses(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "code rejected",
			err:        providers.NewError("github", providers.KindTokenExchange, errors.New("bad_verification_code")),
			wantStatus: http.StatusUnauthorized,
			wantError:  "The provider rejected the authorization code.",
		},
		{
			name:       "provider down",
			err:        providers.NewError("github", providers.KindProviderUnavailable, errors.New("connection refused")),
			wantStatus: http.StatusBadGateway,
			wantError:  "The identity provider is temporarily unavailable.",
		},
		{
			name:       "profile fetch failed",
			err:        providers.NewError("github", providers.KindProfileFetch, errors.New("403 from api")),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Error retrieving user data",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAuthFixture(t, &stubProvider{name: "github", err: tc.err})

			state := f.startState(t, "github")
			rec := f.get(t, "/api/auth/github/callback?code=abc&state="+state)
			require.Equal(t, tc.wantStatus, rec.Code)
			require.Equal(t, tc.wantError, decodeBody(t, rec)["error"])
		})
	}
}

func TestAuthRoutes_CallbackIdPDenied(t *testing.T) {
	f := newAuthFixture(t, &stubProvider{name: "github"})

	rec := f.get(t, "/api/auth/github/callback?error=access_denied")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, f.provider.calls)
}

func TestAuthRoutes_Refresh(t *testing.T) {
	f := newAuthFixture(t, &stubProvider{name: "github"})

	pair, err := f.issuer.IssuePair(token.Claims{ID: "42", Name: "bob"})
	require.NoError(t, err)

	post := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		f.mux.ServeHTTP(rec, req)
		return rec
	}

	rec := post(`{"refreshToken":"` + pair.RefreshToken + `"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, decodeBody(t, rec)["accessToken"])

	// An access token is not accepted in place of a refresh token.
	rec = post(`{"refreshToken":"` + pair.AccessToken + `"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = post(`{"refreshToken":"garbage"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRoutes_ListProviders(t *testing.T) {
	f := newAuthFixture(t, &stubProvider{name: "github"})

	rec := f.get(t, "/api/auth/providers")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Providers []string `json:"providers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, []string{"github"}, body.Providers)
}

// A browser preflight must be answered by the CORS middleware, not by the
// mux's automatic 405 for the method-scoped patterns.
func TestAuthRoutes_PreflightReachesCORS(t *testing.T) {
	issuer, err := token.NewIssuer("access-secret-1", "refresh-secret-2", time.Minute, time.Hour)
	require.NoError(t, err)

	c := memory.New(time.Minute)
	t.Cleanup(func() { _ = c.Close() })

	services := authsvc.NewServices(authsvc.Deps{
		Registry: providers.NewRegistry(&stubProvider{name: "github"}),
		Cache:    c,
		Users:    &stubUserStore{},
		Issuer:   issuer,
	})

	mux := http.NewServeMux()
	router.RegisterAuthRoutes(mux, router.AuthRouterDeps{
		Controllers: authctrl.NewControllers(services),
		CORSOrigins: []string{"https://app.example.com"},
	})

	for _, target := range []string{
		"/api/auth/refresh",
		"/api/auth/github",
		"/api/auth/github/callback",
		"/api/auth/providers",
	} {
		req := httptest.NewRequest(http.MethodOptions, target, nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code, target)
		require.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"), target)
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST", target)
	}
}

func TestAuthRoutes_MethodNotAllowed(t *testing.T) {
	f := newAuthFixture(t, &stubProvider{name: "github"})

	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/auth/refresh", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
