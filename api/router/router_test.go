package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"trend-studio/api/router"
	"trend-studio/auth"
	"trend-studio/models"
	"trend-studio/publisher"
	"trend-studio/services"
)

type stubGenerator struct{}

func (stubGenerator) GenerateDraft(_ context.Context, topic models.TrendingTopic, style models.BlogStyle, _ string) (*models.GeneratedBlog, error) {
	return &models.GeneratedBlog{
		ID:      uuid.NewString(),
		Title:   topic.Title,
		Content: "# " + topic.Title + "\n\nFirst paragraph.\n\n## Details\n\nSecond paragraph.",
		Style:   style,
		Images: []models.BlogImage{
			{URL: "https://img.example/header.png", IsAIGenerated: true},
			{URL: "https://img.example/detail.png", IsAIGenerated: true},
		},
		SEOData: models.SEOData{Slug: "stub-post", MetaDescription: "stub"},
		Metrics: models.BlogMetrics{SEOScore: 80},
	}, nil
}

func (stubGenerator) RefineDraft(_ context.Context, blog *models.GeneratedBlog, instruction string) error {
	blog.Content += "\n\n" + instruction
	return nil
}

func (stubGenerator) ExtendDraft(_ context.Context, blog *models.GeneratedBlog, topic string) error {
	blog.Content += "\n\n## " + topic
	return nil
}

type stubTrends struct{}

func (stubTrends) FetchTrendingTopics(context.Context, string, string, []string) []models.TrendingTopic {
	return []models.TrendingTopic{{ID: "t1", Title: "Solid state batteries", Source: "News"}}
}

type memDraftStore struct{ snap *models.DraftSnapshot }

func (m *memDraftStore) UpsertBySession(_ context.Context, s *models.DraftSnapshot) error {
	copied := *s
	m.snap = &copied
	return nil
}

func (m *memDraftStore) FindBySession(context.Context, string) (*models.DraftSnapshot, error) {
	if m.snap == nil {
		return nil, errors.New("not found")
	}
	return m.snap, nil
}

func (m *memDraftStore) DeleteBySession(context.Context, string) error {
	m.snap = nil
	return nil
}

type memSettingsStore struct{ doc *models.PublisherSettings }

func (m *memSettingsStore) UpsertBySession(_ context.Context, s *models.PublisherSettings) error {
	copied := *s
	m.doc = &copied
	return nil
}

func (m *memSettingsStore) FindBySession(context.Context, string) (*models.PublisherSettings, error) {
	if m.doc == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.doc, nil
}

type memPublishLogs struct{ entries []models.PublishLog }

func (m *memPublishLogs) Insert(_ context.Context, log *models.PublishLog) error {
	m.entries = append(m.entries, *log)
	return nil
}

func (m *memPublishLogs) FindBySession(_ context.Context, sessionID string) ([]models.PublishLog, error) {
	var out []models.PublishLog
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].SessionID == sessionID {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

type memAILogs struct{ entries []models.AILog }

func (m *memAILogs) FindRecent(_ context.Context, limit int64) ([]models.AILog, error) {
	if int64(len(m.entries)) < limit {
		limit = int64(len(m.entries))
	}
	return m.entries[:limit], nil
}

func newTestRouter(t *testing.T, bloggerURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := services.NewSessionRegistry()
	studio := services.NewStudioService(stubGenerator{}, sessions, &memDraftStore{}, nil)
	trends := services.NewTrendService(stubTrends{}, nil, nil, sessions)
	settings := services.NewSettingsService(&memSettingsStore{})
	authSvc := services.NewAuthService(auth.NewBloggerOAuthClient("https://www.googleapis.com/auth/blogger", "secret"), settings)
	publish := services.NewPublishService(studio, settings, publisher.NewBloggerClient(bloggerURL), &memPublishLogs{}, nil)
	audit := services.NewAuditService(&memAILogs{entries: []models.AILog{{Operation: "generate_draft", ModelName: "gemini"}}})

	return router.New(router.Deps{
		Trends:   trends,
		Studio:   studio,
		Settings: settings,
		Auth:     authSvc,
		Publish:  publish,
		Audit:    audit,
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDraftLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t, "http://unused.example")

	w := doJSON(t, r, http.MethodGet, "/api/v1/studio/draft", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/studio/drafts", `{"topic":"Solid state batteries","style":"News"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var draft map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &draft))
	assert.Equal(t, "Solid state batteries", draft["title"])
	assert.NotZero(t, draft["wordCount"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/studio/draft", "")
	require.Equal(t, http.StatusOK, w.Code)
	var state map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "editing", state["state"])

	w = doJSON(t, r, http.MethodPut, "/api/v1/studio/draft", `{"title":"Edited title"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Edited title")

	w = doJSON(t, r, http.MethodGet, "/api/v1/studio/draft/preview?mode=nope", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/studio/draft/preview?mode=article", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mode":"article"`)

	w = doJSON(t, r, http.MethodGet, "/api/v1/studio/draft/html", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Solid state batteries")
}

func TestVariationsAndSelectOverHTTP(t *testing.T) {
	r := newTestRouter(t, "http://unused.example")

	w := doJSON(t, r, http.MethodGet, "/api/v1/trends", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Solid state batteries")

	w = doJSON(t, r, http.MethodPost, "/api/v1/studio/variations", `{"topic_id":"t1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Drafts []struct {
			ID    string `json:"id"`
			Style string `json:"style"`
		} `json:"drafts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Drafts, 4)

	w = doJSON(t, r, http.MethodPost, "/api/v1/studio/select", `{"draft_id":"`+res.Drafts[0].ID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/studio/select", `{"draft_id":"missing"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsRoundTripAndAuthURL(t *testing.T) {
	r := newTestRouter(t, "http://unused.example")

	w := doJSON(t, r, http.MethodGet, "/api/v1/settings", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/blogger/url?redirect_uri=http://localhost:5173/callback", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/settings", `{"blogId":"blog-42","oauthClientId":"client-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "blog-42")

	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/blogger/url?redirect_uri=http://localhost:5173/callback", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "client_id=client-1")
}

func TestPublishOverHTTP(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer token-abc", req.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"p1","url":"https://example.blogspot.com/p1","title":"Solid state batteries"}`))
	}))
	defer backend.Close()

	r := newTestRouter(t, backend.URL)

	w := doJSON(t, r, http.MethodPut, "/api/v1/settings", `{"blogId":"blog-42","oauthClientId":"client-1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/v1/studio/drafts", `{"topic":"Solid state batteries","style":"News"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/studio/publish", `{"access_token":"token-abc"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://example.blogspot.com/p1")

	w = doJSON(t, r, http.MethodGet, "/api/v1/studio/publish/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"post_id":"p1"`)
}

func TestSnapshotSaveLoadDiscardOverHTTP(t *testing.T) {
	r := newTestRouter(t, "http://unused.example")

	w := doJSON(t, r, http.MethodPost, "/api/v1/studio/drafts", `{"topic":"Solid state batteries","style":"News"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/studio/draft/save", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/studio/draft/saved", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Solid state batteries")

	w = doJSON(t, r, http.MethodDelete, "/api/v1/studio/draft/saved", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/studio/draft/saved", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecentAILogsEndpoint(t *testing.T) {
	r := newTestRouter(t, "http://unused.example")

	w := doJSON(t, r, http.MethodGet, "/api/v1/logs/ai?limit=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "generate_draft")
}
