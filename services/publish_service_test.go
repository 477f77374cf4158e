package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"trend-studio/models"
	"trend-studio/publisher"
	"trend-studio/services"
)

type fakeSettingsStore struct {
	mu   sync.Mutex
	docs map[string]*models.PublisherSettings
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{docs: make(map[string]*models.PublisherSettings)}
}

func (f *fakeSettingsStore) UpsertBySession(_ context.Context, s *models.PublisherSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *s
	f.docs[s.SessionID] = &copied
	return nil
}

func (f *fakeSettingsStore) FindBySession(_ context.Context, sessionID string) (*models.PublisherSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.docs[sessionID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return s, nil
}

type fakePublishLogStore struct {
	mu   sync.Mutex
	logs []models.PublishLog
}

func (f *fakePublishLogStore) Insert(_ context.Context, log *models.PublishLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakePublishLogStore) FindBySession(_ context.Context, sessionID string) ([]models.PublishLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.PublishLog
	for i := len(f.logs) - 1; i >= 0; i-- {
		if f.logs[i].SessionID == sessionID {
			out = append(out, f.logs[i])
		}
	}
	return out, nil
}

type fakeBlogger struct {
	err       error
	lastBlog  *models.GeneratedBlog
	lastBlogI string
	lastToken string
}

func (f *fakeBlogger) Publish(_ context.Context, blog *models.GeneratedBlog, blogID, accessToken string) (*publisher.PublishedPost, error) {
	f.lastBlog = blog
	f.lastBlogI = blogID
	f.lastToken = accessToken
	if f.err != nil {
		return nil, f.err
	}
	return &publisher.PublishedPost{ID: "post-1", URL: "https://example.blogspot.com/post-1", Title: blog.Title}, nil
}

func newPublishFixture(t *testing.T, client *fakeBlogger) (*services.PublishService, *services.SettingsService, *fakePublishLogStore, *services.StudioService) {
	t.Helper()
	studio, _, _ := newStudio(&fakeGenerator{})
	settings := services.NewSettingsService(newFakeSettingsStore())
	logs := &fakePublishLogStore{}
	svc := services.NewPublishService(studio, settings, client, logs, nil)
	return svc, settings, logs, studio
}

func TestPublishSendsDraftAndLogsSuccess(t *testing.T) {
	client := &fakeBlogger{}
	svc, settings, logs, studio := newPublishFixture(t, client)

	_, err := studio.GenerateSingle(context.Background(), "s1", "Solid state batteries", models.StyleNews)
	require.NoError(t, err)
	_, err = settings.Put(context.Background(), "s1", "blog-42", "client-id")
	require.NoError(t, err)

	post, err := svc.Publish(context.Background(), "s1", "token-abc")
	require.NoError(t, err)
	assert.Equal(t, "post-1", post.ID)
	assert.Equal(t, "blog-42", client.lastBlogI)
	assert.Equal(t, "token-abc", client.lastToken)

	require.Len(t, logs.logs, 1)
	entry := logs.logs[0]
	assert.True(t, entry.Success)
	assert.Equal(t, "post-1", entry.PostID)
	assert.Contains(t, entry.Labels, "AI Generated")
	assert.Contains(t, entry.Labels, "TrendSetter")
}

func TestPublishFailureIsLoggedAndReturned(t *testing.T) {
	client := &fakeBlogger{err: &publisher.PublishError{StatusCode: 401, Message: "Invalid Credentials"}}
	svc, settings, logs, studio := newPublishFixture(t, client)

	_, err := studio.GenerateSingle(context.Background(), "s1", "Solid state batteries", models.StyleNews)
	require.NoError(t, err)
	_, err = settings.Put(context.Background(), "s1", "blog-42", "client-id")
	require.NoError(t, err)

	_, err = svc.Publish(context.Background(), "s1", "bad-token")
	var pubErr *publisher.PublishError
	require.ErrorAs(t, err, &pubErr)
	assert.Equal(t, 401, pubErr.StatusCode)

	require.Len(t, logs.logs, 1)
	assert.False(t, logs.logs[0].Success)
	assert.Contains(t, logs.logs[0].ErrorMessage, "Invalid Credentials")
}

func TestPublishRequiresDraftAndSettings(t *testing.T) {
	svc, settings, _, studio := newPublishFixture(t, &fakeBlogger{})

	_, err := svc.Publish(context.Background(), "s1", "token")
	assert.ErrorIs(t, err, services.ErrNoDraft)

	_, err = studio.GenerateSingle(context.Background(), "s1", "Solid state batteries", models.StyleNews)
	require.NoError(t, err)

	_, err = svc.Publish(context.Background(), "s1", "token")
	assert.ErrorIs(t, err, services.ErrSettingsMissing)

	_, err = settings.Put(context.Background(), "s1", "", "client-id")
	require.NoError(t, err)
	_, err = svc.Publish(context.Background(), "s1", "token")
	assert.ErrorIs(t, err, services.ErrSettingsMissing)
}

func TestPublishHistoryListsAttemptsNewestFirst(t *testing.T) {
	client := &fakeBlogger{}
	svc, settings, _, studio := newPublishFixture(t, client)

	_, err := studio.GenerateSingle(context.Background(), "s1", "Solid state batteries", models.StyleNews)
	require.NoError(t, err)
	_, err = settings.Put(context.Background(), "s1", "blog-42", "client-id")
	require.NoError(t, err)

	_, err = svc.Publish(context.Background(), "s1", "token-abc")
	require.NoError(t, err)
	client.err = &publisher.PublishError{StatusCode: 401, Message: "Invalid Credentials"}
	_, err = svc.Publish(context.Background(), "s1", "expired")
	require.Error(t, err)

	history, err := svc.History(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.False(t, history[0].Success)
	assert.True(t, history[1].Success)
}
