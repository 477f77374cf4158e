package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trend-studio/models"
	"trend-studio/services"
)

type fakeTrendFetcher struct {
	calls  int
	topics []models.TrendingTopic
}

func (f *fakeTrendFetcher) FetchTrendingTopics(_ context.Context, _, _ string, _ []string) []models.TrendingTopic {
	f.calls++
	return f.topics
}

func TestGetTrendsRemembersTopicsOnSession(t *testing.T) {
	fetcher := &fakeTrendFetcher{topics: []models.TrendingTopic{
		{ID: "t1", Title: "Solid state batteries", Source: "News"},
		{ID: "t2", Title: "Foldable phones", Source: "Google"},
	}}
	registry := services.NewSessionRegistry()
	trends := services.NewTrendService(fetcher, nil, nil, registry)
	studio := services.NewStudioService(&fakeGenerator{}, registry, newFakeDraftStore(), nil)

	got := trends.GetTrends(context.Background(), "s1", "Technology", "", false)
	require.Len(t, got, 2)
	assert.Equal(t, 1, fetcher.calls)

	// A variation run can now resolve the topic by id.
	res, err := studio.GenerateVariations(context.Background(), "s1", services.VariationsInput{TopicID: "t2"})
	require.NoError(t, err)
	assert.Equal(t, "Foldable phones", res.TopicTitle)

	_, err = studio.GenerateVariations(context.Background(), "s1", services.VariationsInput{TopicID: "missing"})
	assert.ErrorIs(t, err, services.ErrUnknownTopic)
}

func TestGetTrendsReturnsEmptyListOnNilFetch(t *testing.T) {
	fetcher := &fakeTrendFetcher{topics: nil}
	registry := services.NewSessionRegistry()
	trends := services.NewTrendService(fetcher, nil, nil, registry)

	got := trends.GetTrends(context.Background(), "s1", "Technology", "", true)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
