package publisher_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trend-studio/publisher"
)

func TestPublishSuccess(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":    "post-123",
			"url":   "https://example.blogspot.com/post-123",
			"title": "Test Post",
		})
	}))
	defer srv.Close()

	client := publisher.NewBloggerClientWithHTTP(srv.Client(), srv.URL)
	blog := twoImageBlog("## A\n\nbody")

	post, err := client.Publish(context.Background(), blog, "42", "tok-abc")
	require.NoError(t, err)

	assert.Equal(t, "post-123", post.ID)
	assert.Equal(t, "/blogs/42/posts", gotPath)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.Equal(t, "blogger#post", gotBody["kind"])
	assert.Equal(t, "Test Post", gotBody["title"])
	assert.Equal(t, []any{"News", "AI Generated", "TrendSetter"}, gotBody["labels"])
	assert.Contains(t, gotBody["content"], "<h2>A</h2>")
}

func TestPublishPlatformError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"The user does not have access to blog 42."}}`))
	}))
	defer srv.Close()

	client := publisher.NewBloggerClientWithHTTP(srv.Client(), srv.URL)
	_, err := client.Publish(context.Background(), twoImageBlog("body"), "42", "tok")
	require.Error(t, err)

	var pe *publisher.PublishError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusForbidden, pe.StatusCode)
	assert.Equal(t, "The user does not have access to blog 42.", pe.Message)
}

func TestPublishErrorWithoutBodyUsesGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := publisher.NewBloggerClientWithHTTP(srv.Client(), srv.URL)
	_, err := client.Publish(context.Background(), twoImageBlog("body"), "42", "tok")
	require.Error(t, err)

	var pe *publisher.PublishError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Failed to publish to Blogger.", pe.Message)
}

func TestPublishOriginErrorGetsGuidance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"origin mismatch for the supplied client"}}`))
	}))
	defer srv.Close()

	client := publisher.NewBloggerClientWithHTTP(srv.Client(), srv.URL)
	_, err := client.Publish(context.Background(), twoImageBlog("body"), "42", "tok")
	require.Error(t, err)

	var pe *publisher.PublishError
	require.ErrorAs(t, err, &pe)
	assert.NotEmpty(t, pe.Guidance)
}
