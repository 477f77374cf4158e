package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// TokenProvider is the authentication port: one operation that turns a user
// consent code into a bearer token. The controller and publish adapter stay
// decoupled from any specific consent-flow implementation.
type TokenProvider interface {
	AuthCodeURL(clientID, redirectURL, state string) string
	ExchangeCode(ctx context.Context, clientID, redirectURL, code string) (string, error)
}

// BloggerOAuthClient implements TokenProvider with Google's authorization-code
// flow scoped to the Blogger API. The client id comes from user settings per
// request; the client secret, when the OAuth client type requires one, comes
// from the environment.
type BloggerOAuthClient struct {
	scope        string
	clientSecret string
}

func NewBloggerOAuthClient(scope, clientSecret string) *BloggerOAuthClient {
	return &BloggerOAuthClient{scope: scope, clientSecret: clientSecret}
}

func (c *BloggerOAuthClient) config(clientID, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: c.clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{c.scope},
		Endpoint:     google.Endpoint,
	}
}

// AuthCodeURL builds the consent URL the browser should open.
func (c *BloggerOAuthClient) AuthCodeURL(clientID, redirectURL, state string) string {
	return c.config(clientID, redirectURL).AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// ExchangeCode swaps the consent code for an access token. The token is handed
// back to the caller for a single publish call and never persisted.
func (c *BloggerOAuthClient) ExchangeCode(ctx context.Context, clientID, redirectURL, code string) (string, error) {
	tok, err := c.config(clientID, redirectURL).Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("blogger oauth exchange: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("blogger oauth exchange: empty access token")
	}
	return tok.AccessToken, nil
}
