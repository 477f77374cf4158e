package services

import (
	"context"
	"time"

	"trend-studio/events"
	"trend-studio/kafka"
	"trend-studio/logger"
	"trend-studio/models"
	"trend-studio/publisher"
)

// BloggerPublisher is the slice of the publisher client this service needs.
type BloggerPublisher interface {
	Publish(ctx context.Context, blog *models.GeneratedBlog, blogID, accessToken string) (*publisher.PublishedPost, error)
}

// PublishLogStore records publish attempts and serves the per-session history.
type PublishLogStore interface {
	Insert(ctx context.Context, log *models.PublishLog) error
	FindBySession(ctx context.Context, sessionID string) ([]models.PublishLog, error)
}

// PublishService posts the session's active draft to the configured blog.
// Every attempt, failed or not, lands in the publish log.
type PublishService struct {
	studio   *StudioService
	settings *SettingsService
	client   BloggerPublisher
	logs     PublishLogStore
	producer kafka.Producer
}

func NewPublishService(studio *StudioService, settings *SettingsService, client BloggerPublisher, logs PublishLogStore, producer kafka.Producer) *PublishService {
	if producer == nil {
		producer = kafka.NopProducer{}
	}
	return &PublishService{
		studio:   studio,
		settings: settings,
		client:   client,
		logs:     logs,
		producer: producer,
	}
}

// Publish sends the session's draft to the platform with the caller-supplied
// access token. The token is used for this one call and dropped.
func (s *PublishService) Publish(ctx context.Context, sessionID, accessToken string) (*publisher.PublishedPost, error) {
	draft, _, err := s.studio.CurrentDraft(sessionID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if settings.BlogID == "" {
		return nil, ErrSettingsMissing
	}

	requestedAt := time.Now()
	post, pubErr := s.client.Publish(ctx, draft, settings.BlogID, accessToken)

	entry := &models.PublishLog{
		SessionID:   sessionID,
		BlogID:      settings.BlogID,
		Title:       draft.Title,
		Labels:      publisher.Labels(draft),
		Success:     pubErr == nil,
		RequestedAt: requestedAt,
		CompletedAt: time.Now(),
	}
	if pubErr != nil {
		entry.ErrorMessage = pubErr.Error()
	} else {
		entry.PostID = post.ID
		entry.PostURL = post.URL
	}
	if logErr := s.logs.Insert(ctx, entry); logErr != nil {
		logger.WarnWithFields("failed to persist publish log", logger.Fields{
			"error": logErr.Error(),
		})
	}

	if pubErr != nil {
		return nil, pubErr
	}

	if err := s.producer.Emit(kafka.TopicStudioEvents, events.PostPublishedEvent{
		BaseEvent: events.NewBase(events.PostPublished),
		SessionID: sessionID,
		DraftID:   draft.ID,
		BlogID:    settings.BlogID,
		PostID:    post.ID,
		PostURL:   post.URL,
	}); err != nil {
		logger.WarnWithFields("event emit failed", logger.Fields{
			"type":  string(events.PostPublished),
			"error": err.Error(),
		})
	}

	return post, nil
}

// History returns the session's publish attempts, newest first.
func (s *PublishService) History(ctx context.Context, sessionID string) ([]models.PublishLog, error) {
	return s.logs.FindBySession(ctx, sessionID)
}
