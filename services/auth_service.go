package services

import (
	"context"

	"github.com/google/uuid"

	"trend-studio/auth"
)

// AuthService builds consent URLs and exchanges authorization codes for the
// blogging platform, using the client id from the session's settings. Tokens
// are handed back to the browser, never persisted.
type AuthService struct {
	provider auth.TokenProvider
	settings *SettingsService
}

func NewAuthService(provider auth.TokenProvider, settings *SettingsService) *AuthService {
	return &AuthService{provider: provider, settings: settings}
}

// AuthURL returns the consent URL for the session's configured client id.
func (s *AuthService) AuthURL(ctx context.Context, sessionID, redirectURI string) (string, error) {
	settings, err := s.settings.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if settings.OAuthClientID == "" {
		return "", ErrSettingsMissing
	}
	return s.provider.AuthCodeURL(settings.OAuthClientID, redirectURI, uuid.NewString()), nil
}

// ExchangeCode trades an authorization code for an access token.
func (s *AuthService) ExchangeCode(ctx context.Context, sessionID, code, redirectURI string) (string, error) {
	settings, err := s.settings.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if settings.OAuthClientID == "" {
		return "", ErrSettingsMissing
	}
	return s.provider.ExchangeCode(ctx, settings.OAuthClientID, redirectURI, code)
}
