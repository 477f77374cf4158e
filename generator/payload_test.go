package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trend-studio/models"
)

const validDraftJSON = `{
	"title": "iPhone 17 Review: Worth It?",
	"content": "## The short answer\n\nIt depends on what you carry today.",
	"metaTitle": "iPhone 17 Review",
	"metaDescription": "Hands-on with the iPhone 17.",
	"slug": "",
	"schema": "{\"@type\":\"Article\"}",
	"metrics": {"seoScore": 88, "keywordScore": 120, "readabilityScore": -3, "aiScore": 40, "humanScore": 75}
}`

func TestParseDraftPayloadSlugBackfillAndClamp(t *testing.T) {
	p, err := parseDraftPayload([]byte(validDraftJSON))
	require.NoError(t, err)

	assert.Equal(t, "iphone-17-review-worth-it", p.Slug)

	m := p.Metrics.toModel()
	assert.Equal(t, 88, m.SEOScore)
	assert.Equal(t, 100, m.KeywordScore, "scores above 100 clamp down")
	assert.Equal(t, 0, m.ReadabilityScore, "negative scores clamp to zero")
}

func TestParseDraftPayloadRejectsShapeMismatch(t *testing.T) {
	cases := map[string]string{
		"not json":        "nope",
		"missing title":   `{"content":"x","metrics":{"seoScore":1,"keywordScore":1,"readabilityScore":1,"aiScore":1,"humanScore":1}}`,
		"missing content": `{"title":"x","metrics":{"seoScore":1,"keywordScore":1,"readabilityScore":1,"aiScore":1,"humanScore":1}}`,
		"missing metrics": `{"title":"x","content":"y"}`,
	}
	for name, raw := range cases {
		_, err := parseDraftPayload([]byte(raw))
		assert.Error(t, err, name)
	}
}

func TestParseExtendPayload(t *testing.T) {
	p, err := parseExtendPayload([]byte(`{"content":"body","metrics":{"seoScore":50,"keywordScore":50,"readabilityScore":50,"aiScore":50,"humanScore":50}}`))
	require.NoError(t, err)
	assert.Equal(t, "body", p.Content)

	_, err = parseExtendPayload([]byte(`{"metrics":{}}`))
	assert.Error(t, err)
}

func TestApplyImageFallback(t *testing.T) {
	for _, start := range [][]models.BlogImage{
		nil,
		{{URL: "data:image/png;base64,abc", IsAIGenerated: true}},
	} {
		blog := &models.GeneratedBlog{Images: start}
		ApplyImageFallback(blog)

		require.GreaterOrEqual(t, len(blog.Images), 2)
		for i := len(start); i < len(blog.Images); i++ {
			assert.Equal(t, models.FallbackImageURL, blog.Images[i].URL)
			assert.False(t, blog.Images[i].IsAIGenerated)
		}
	}
}
