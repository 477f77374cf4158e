package generator

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"trend-studio/logger"
	"trend-studio/models"
)

// FetchTrendingTopics asks the model for today's trending topics in the given
// category, grounded by Google Search and any RSS headlines the caller
// collected. A missing or unparseable response yields an empty list, never an
// error: callers treat empty as "no trends".
func (c *Client) FetchTrendingTopics(ctx context.Context, category, keyword string, headlines []string) []models.TrendingTopic {
	if category == "" {
		category = "General"
	}
	prompt := trendsPrompt(category, keyword, headlines)
	start := time.Now()

	result, err := c.genai.Models.GenerateContent(
		ctx,
		c.textModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Tools:            []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
			ResponseMIMEType: "application/json",
			ResponseSchema:   trendsSchema,
		},
	)
	c.record(ctx, "fetch_trends", c.textModel, prompt, result, err, start)
	if err != nil {
		logCallError("fetch_trends", err)
		return nil
	}

	topics := ParseTrendingTopics([]byte(result.Text()))
	if len(topics) == 0 {
		logger.WarnWithFields("trend response yielded no topics", logger.Fields{
			"category": category,
			"keyword":  keyword,
		})
	}
	return topics
}

// ParseTrendingTopics deterministically parses the JSON trend payload.
// Malformed JSON or a non-array shape returns an empty slice; entries without
// a title are skipped, missing ids are backfilled, and sources outside the
// known set are normalized to "News".
func ParseTrendingTopics(raw []byte) []models.TrendingTopic {
	var parsed []models.TrendingTopic
	if err := json.Unmarshal(raw, &parsed); err != nil {
		logger.WarnWithFields("failed to parse trends response", logger.Fields{
			"error": err.Error(),
		})
		return []models.TrendingTopic{}
	}

	out := make([]models.TrendingTopic, 0, len(parsed))
	for _, t := range parsed {
		if strings.TrimSpace(t.Title) == "" {
			continue
		}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if !models.KnownTrendSource(t.Source) {
			t.Source = "News"
		}
		out = append(out, t)
	}
	return out
}
