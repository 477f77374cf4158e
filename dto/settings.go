package dto

import "trend-studio/models"

// SettingsDTO exposes the publisher settings. The OAuth client secret never
// leaves the server; only the client id round-trips.
type SettingsDTO struct {
	BlogID        string `json:"blogId"`
	OAuthClientID string `json:"oauthClientId"`
}

// NewSettingsDTO constructs SettingsDTO from models.PublisherSettings.
func NewSettingsDTO(s *models.PublisherSettings) SettingsDTO {
	return SettingsDTO{
		BlogID:        s.BlogID,
		OAuthClientID: s.OAuthClientID,
	}
}

// PublishResultDTO reports a successful publish.
type PublishResultDTO struct {
	PostID string `json:"postId"`
	URL    string `json:"url"`
	Title  string `json:"title"`
}
