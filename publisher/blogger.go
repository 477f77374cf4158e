package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"trend-studio/httpclient"
	"trend-studio/models"
)

// PublishedPost mirrors the fields of interest from a created Blogger post.
type PublishedPost struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Published string `json:"published"`
}

type bloggerErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// PublishError carries the platform's message plus optional guidance when the
// failure looks like an OAuth origin-registration problem.
type PublishError struct {
	StatusCode int
	Message    string
	Guidance   string
}

func (e *PublishError) Error() string {
	if e.Guidance != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Guidance)
	}
	return e.Message
}

// BloggerClient publishes posts through the Blogger v3 REST API.
type BloggerClient struct {
	base *httpclient.BaseClient
}

// NewBloggerClient creates a client against the given API base URL
// (normally https://www.googleapis.com/blogger/v3).
func NewBloggerClient(baseURL string) *BloggerClient {
	return &BloggerClient{base: httpclient.NewBaseClient(baseURL)}
}

// NewBloggerClientWithHTTP is meant for tests that inject an httptest server.
func NewBloggerClientWithHTTP(httpClient *http.Client, baseURL string) *BloggerClient {
	return &BloggerClient{base: httpclient.NewBaseClientWithClient(httpClient, baseURL)}
}

// Publish converts the draft to HTML and issues one authenticated POST to
// /blogs/{blogID}/posts. The token is used for this single call only.
func (c *BloggerClient) Publish(ctx context.Context, blog *models.GeneratedBlog, blogID, accessToken string) (*PublishedPost, error) {
	payload := map[string]any{
		"kind":    "blogger#post",
		"blog":    map[string]string{"id": blogID},
		"title":   blog.Title,
		"content": ConvertToFullHTML(blog),
		"labels":  Labels(blog),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, fmt.Sprintf("/blogs/%s/posts", blogID), nil, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodePublishError(resp)
	}

	var post PublishedPost
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, fmt.Errorf("blogger: decode created post: %w", err)
	}
	return &post, nil
}

// Labels returns the fixed label set attached to every published post.
func Labels(blog *models.GeneratedBlog) []string {
	return []string{string(blog.Style), "AI Generated", "TrendSetter"}
}

func decodePublishError(resp *http.Response) error {
	pe := &PublishError{StatusCode: resp.StatusCode, Message: "Failed to publish to Blogger."}

	raw, err := io.ReadAll(resp.Body)
	if err == nil && len(raw) > 0 {
		var eb bloggerErrorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Error.Message != "" {
			pe.Message = eb.Error.Message
		}
	}

	msg := strings.ToLower(pe.Message)
	if strings.Contains(msg, "origin") || strings.Contains(msg, "redirect_uri") {
		pe.Guidance = "check that this app's origin is registered for the OAuth client id in the Google Cloud console"
	}
	return pe
}
