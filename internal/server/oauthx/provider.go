// Package oauthx talks to the external identity provider used for delegated
// logins (authorization-code grant).
package oauthx

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"

	"github.com/pandax-i/healthhub/internal/server/config"
)

// UserInfo is the identity the provider reports for an authorized user.
type UserInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Provider abstracts the external identity provider so the login service can
// be tested without the network.
type Provider interface {
	// AuthCodeURL returns the provider page the browser is sent to.
	AuthCodeURL() string

	// FetchUser redeems an authorization code for the user's identity.
	FetchUser(ctx context.Context, code string) (*UserInfo, error)
}

// HTTPProvider implements Provider over HTTP using the configured endpoints.
type HTTPProvider struct {
	oauth       *oauth2.Config
	client      *resty.Client
	userInfoURL string
}

// NewHTTPProvider builds a provider from server configuration.
func NewHTTPProvider(cfg *config.Config) *HTTPProvider {
	return &HTTPProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       []string{"read"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuthAuthorizeURL,
				TokenURL: cfg.OAuthTokenURL,
			},
		},
		client:      resty.New().SetTimeout(10 * time.Second),
		userInfoURL: cfg.OAuthUserInfoURL,
	}
}

// AuthCodeURL returns the provider's authorization page URL.
func (p *HTTPProvider) AuthCodeURL() string {
	return p.oauth.AuthCodeURL("")
}

// FetchUser exchanges the authorization code for an access token and fetches
// the user's profile with it.
func (p *HTTPProvider) FetchUser(ctx context.Context, code string) (*UserInfo, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}

	info := &UserInfo{}
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(info).
		Get(p.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("user info request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("user info request: status %d", resp.StatusCode())
	}

	return info, nil
}
