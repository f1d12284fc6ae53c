// Package google implements the Google OAuth2 provider using the
// authorization code grant against the v3 userinfo endpoint.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/dropDatabas3/learnhub/internal/providers"
)

const (
	authEndpoint     = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenEndpoint    = "https://oauth2.googleapis.com/token"
	userInfoEndpoint = "https://www.googleapis.com/oauth2/v3/userinfo"
)

type Provider struct {
	OAuth *oauth2.Config
	HTTP  *http.Client

	UserInfoEndpoint string
}

func New(cfg providers.Config) (*Provider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RedirectURI == "" {
		return nil, errors.New("google: client id, secret and redirect uri are required")
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
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  authEndpoint,
				TokenURL: tokenEndpoint,
			},
		},
		HTTP:             hc,
		UserInfoEndpoint: userInfoEndpoint,
	}, nil
}

func (p *Provider) Name() string { return providers.Google }

// AuthURL requests offline access with forced consent so Google always
// returns a refresh token for the provider session.
func (p *Provider) AuthURL(state string) string {
	return p.OAuth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

type userInfo struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

func (p *Provider) UserData(ctx context.Context, code string) (*providers.Profile, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.HTTP)

	tok, err := p.OAuth.Exchange(ctx, code)
	if err != nil {
		return nil, providers.NewError(p.Name(), providers.ClassifyExchange(err), err)
	}
	if tok.AccessToken == "" {
		return nil, providers.NewError(p.Name(), providers.KindTokenExchange, errors.New("no access_token in response"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.UserInfoEndpoint, nil)
	if err != nil {
		return nil, providers.NewError(p.Name(), providers.KindProfileFetch, err)
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, providers.NewError(p.Name(), providers.KindProfileFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, providers.NewError(p.Name(), providers.KindProfileFetch,
			fmt.Errorf("userinfo error: status %d", resp.StatusCode))
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, providers.NewError(p.Name(), providers.KindProfileFetch,
			fmt.Errorf("decode userinfo: %w", err))
	}

	return &providers.Profile{
		ID:          info.Sub,
		Name:        info.Name,
		Email:       info.Email,
		Picture:     info.Picture,
		Provider:    p.Name(),
		AccessToken: tok.AccessToken,
	}, nil
}
