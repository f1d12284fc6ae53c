// Package facebook implements the Facebook OAuth2 provider against the
// Graph API. The nested picture.data.url shape is flattened during
// normalization.
package facebook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/dropDatabas3/learnhub/internal/providers"
)

// Graph API version pinned for all three endpoints.
const apiVersion = "v19.0"

const (
	authEndpoint     = "https://www.facebook.com/" + apiVersion + "/dialog/oauth"
	tokenEndpoint    = "https://graph.facebook.com/" + apiVersion + "/oauth/access_token"
	userInfoEndpoint = "https://graph.facebook.com/" + apiVersion + "/me"
)

// profileFields requests a 500px picture; default resolution is tiny.
const profileFields = "id,name,email,picture.width(500)"

type Provider struct {
	OAuth *oauth2.Config
	HTTP  *http.Client

	UserInfoEndpoint string
}

func New(cfg providers.Config) (*Provider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RedirectURI == "" {
		return nil, errors.New("facebook: client id, secret and redirect uri are required")
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
			Scopes:       []string{"email", "public_profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  authEndpoint,
				TokenURL: tokenEndpoint,
			},
		},
		HTTP:             hc,
		UserInfoEndpoint: userInfoEndpoint,
	}, nil
}

func (p *Provider) Name() string { return providers.Facebook }

// AuthURL re-requests previously declined permissions so a user who denied
// the email scope once can still grant it later.
func (p *Provider) AuthURL(state string) string {
	return p.OAuth.AuthCodeURL(state,
		oauth2.SetAuthURLParam("auth_type", "rerequest"),
	)
}

type userInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
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

	// Graph API takes fields and the token as query parameters.
	q := url.Values{}
	q.Set("fields", profileFields)
	q.Set("access_token", tok.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.UserInfoEndpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, providers.NewError(p.Name(), providers.KindProfileFetch, err)
	}

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, providers.NewError(p.Name(), providers.KindProfileFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, providers.NewError(p.Name(), providers.KindProfileFetch,
			fmt.Errorf("graph api error: status %d", resp.StatusCode))
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, providers.NewError(p.Name(), providers.KindProfileFetch,
			fmt.Errorf("decode profile: %w", err))
	}

	return &providers.Profile{
		ID:          info.ID,
		Name:        info.Name,
		Email:       info.Email,
		Picture:     info.Picture.Data.URL,
		Provider:    p.Name(),
		AccessToken: tok.AccessToken,
	}, nil
}
