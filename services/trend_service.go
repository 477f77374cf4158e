package services

import (
	"context"

	"trend-studio/cache"
	"trend-studio/config"
	"trend-studio/feeder"
	"trend-studio/logger"
	"trend-studio/models"
)

// TrendFetcher is the slice of the generator client the trend service needs.
type TrendFetcher interface {
	FetchTrendingTopics(ctx context.Context, category, keyword string, headlines []string) []models.TrendingTopic
}

// TrendService serves the trend list: redis cache first, then a grounded
// model call seeded with recent RSS headlines from the configured outlets.
type TrendService struct {
	gen      TrendFetcher
	cache    *cache.TrendCache
	feeds    []config.TrendFeed
	sessions *SessionRegistry
}

func NewTrendService(gen TrendFetcher, trendCache *cache.TrendCache, feeds []config.TrendFeed, sessions *SessionRegistry) *TrendService {
	return &TrendService{gen: gen, cache: trendCache, feeds: feeds, sessions: sessions}
}

// GetTrends returns the trend list for (category, keyword). refresh bypasses
// the cache. The result is remembered on the session so topic ids can be
// resolved when a variation run starts; an empty list is a valid answer.
func (s *TrendService) GetTrends(ctx context.Context, sessionID, category, keyword string, refresh bool) []models.TrendingTopic {
	if !refresh {
		if topics, ok := s.cache.Get(ctx, category, keyword); ok {
			s.rememberTopics(sessionID, topics)
			return topics
		}
	}

	headlines := feeder.CollectRecentTitles(s.feeds, 5)
	topics := s.gen.FetchTrendingTopics(ctx, category, keyword, headlines)
	if topics == nil {
		topics = []models.TrendingTopic{}
	}

	logger.InfoWithFields("trend list fetched", logger.Fields{
		"category": category,
		"keyword":  keyword,
		"count":    len(topics),
	})

	s.cache.Set(ctx, category, keyword, topics)
	s.rememberTopics(sessionID, topics)
	return topics
}

func (s *TrendService) rememberTopics(sessionID string, topics []models.TrendingTopic) {
	sess := s.sessions.Get(sessionID)
	sess.view(func(sess *Session) {
		sess.topics = topics
	})
}
