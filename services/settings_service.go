package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"trend-studio/models"
)

// SettingsStore persists the per-session publisher settings.
type SettingsStore interface {
	UpsertBySession(ctx context.Context, s *models.PublisherSettings) error
	FindBySession(ctx context.Context, sessionID string) (*models.PublisherSettings, error)
}

// SettingsService owns the publisher settings entered once per session: the
// target blog id and the OAuth client id.
type SettingsService struct {
	store SettingsStore
}

func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the session's settings; ErrSettingsMissing when never saved.
func (s *SettingsService) Get(ctx context.Context, sessionID string) (*models.PublisherSettings, error) {
	settings, err := s.store.FindBySession(ctx, sessionID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSettingsMissing
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Put replaces the session's settings.
func (s *SettingsService) Put(ctx context.Context, sessionID, blogID, clientID string) (*models.PublisherSettings, error) {
	settings := &models.PublisherSettings{
		SessionID:     sessionID,
		BlogID:        strings.TrimSpace(blogID),
		OAuthClientID: strings.TrimSpace(clientID),
	}
	if err := s.store.UpsertBySession(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
