// Package github implements the GitHub OAuth2 provider.
// GitHub is plain OAuth 2.0 without ID tokens, so the profile comes from a
// separate API call, and users with a private email need one more call to
// the emails endpoint.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"

	"github.com/dropDatabas3/learnhub/internal/providers"
)

const (
	authEndpoint  = "https://github.com/login/oauth/authorize"
	tokenEndpoint = "https://github.com/login/oauth/access_token"
	userEndpoint  = "https://api.github.com/user"
	emailEndpoint = "https://api.github.com/user/emails"
)

// Provider implements the GitHub adapter. Endpoint fields are exported so
// tests can point them at stub servers.
type Provider struct {
	OAuth *oauth2.Config
	HTTP  *http.Client

	UserEndpoint  string
	EmailEndpoint string
}

// New validates the credentials and builds the adapter.
func New(cfg providers.Config) (*Provider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RedirectURI == "" {
		return nil, errors.New("github: client id, secret and redirect uri are required")
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = providers.DefaultHTTPClient()
	}
	return &Provider{
		OAuth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{"user:email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  authEndpoint,
				TokenURL: tokenEndpoint,
			},
		},
		HTTP:          hc,
		UserEndpoint:  userEndpoint,
		EmailEndpoint: emailEndpoint,
	}, nil
}

func (p *Provider) Name() string { return providers.GitHub }

// AuthURL builds the authorization URL for the given state.
func (p *Provider) AuthURL(state string) string {
	return p.OAuth.AuthCodeURL(state)
}

type userInfo struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type emailInfo struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// UserData exchanges the code and fetches the normalized profile.
// A missing public email is resolved via the emails endpoint; having no
// usable email at all is not an error.
func (p *Provider) UserData(ctx context.Context, code string) (*providers.Profile, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.HTTP)

	tok, err := p.OAuth.Exchange(ctx, code)
	if err != nil {
		return nil, providers.NewError(p.Name(), providers.ClassifyExchange(err), err)
	}
	if tok.AccessToken == "" {
		return nil, providers.NewError(p.Name(), providers.KindTokenExchange, errors.New("no access_token in response"))
	}

	var info userInfo
	if err := p.getJSON(ctx, p.UserEndpoint, tok.AccessToken, &info); err != nil {
		return nil, providers.NewError(p.Name(), providers.KindProfileFetch, err)
	}

	email := info.Email
	if email == "" {
		var emails []emailInfo
		if err := p.getJSON(ctx, p.EmailEndpoint, tok.AccessToken, &emails); err != nil {
			return nil, providers.NewError(p.Name(), providers.KindProfileFetch, err)
		}
		for _, e := range emails {
			if e.Primary && e.Verified {
				email = e.Email
				break
			}
		}
	}

	name := info.Name
	if name == "" {
		name = info.Login
	}

	return &providers.Profile{
		ID:          strconv.FormatInt(info.ID, 10),
		Name:        name,
		Email:       email,
		Picture:     info.AvatarURL,
		Provider:    p.Name(),
		AccessToken: tok.AccessToken,
	}, nil
}

func (p *Provider) getJSON(ctx context.Context, url, accessToken string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github api error: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
