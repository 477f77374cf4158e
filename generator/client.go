package generator

import (
	"context"
	"time"

	"google.golang.org/genai"

	"trend-studio/config"
	"trend-studio/logger"
	"trend-studio/models"
)

// AuditSink receives one record per generative call. The mongo-backed ai_logs
// repository implements it; tests pass a fake or nil.
type AuditSink interface {
	Record(ctx context.Context, log models.AILog)
}

// Client wraps the Gemini SDK for every content operation of the studio:
// trend discovery, drafting, refinement, extension and image synthesis.
type Client struct {
	genai      *genai.Client
	textModel  string
	proModel   string
	imageModel string
	audit      AuditSink
}

// New creates a Client from app config. The API key stays server-side; the
// browser never sees it.
func New(ctx context.Context, cfg config.AppConfig, audit AuditSink) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, err
	}
	return &Client{
		genai:      gc,
		textModel:  cfg.GeminiTextModel,
		proModel:   cfg.GeminiProModel,
		imageModel: cfg.GeminiImgModel,
		audit:      audit,
	}, nil
}

// record writes an audit entry for one call; no-op without a sink.
func (c *Client) record(ctx context.Context, op, model, prompt string, result *genai.GenerateContentResponse, callErr error, start time.Time) {
	if c.audit == nil {
		return
	}
	entry := models.AILog{
		Operation:     op,
		ModelName:     model,
		Success:       callErr == nil,
		PromptExcerpt: truncate(prompt, 500),
		RequestedAt:   start,
		CompletedAt:   time.Now(),
		DurationMs:    time.Since(start).Milliseconds(),
	}
	if callErr != nil {
		msg := callErr.Error()
		entry.ErrorMessage = &msg
	}
	if result != nil {
		entry.OutputExcerpt = truncate(result.Text(), 500)
		if result.UsageMetadata != nil {
			entry.InputTokens = int64(result.UsageMetadata.PromptTokenCount)
			entry.OutputTokens = int64(result.UsageMetadata.CandidatesTokenCount)
			entry.TotalTokens = int64(result.UsageMetadata.TotalTokenCount)
		}
	}
	c.audit.Record(ctx, entry)
}

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

// groundingURIs collects web citation URIs attached by search grounding.
func groundingURIs(result *genai.GenerateContentResponse) []string {
	if result == nil || len(result.Candidates) == 0 {
		return nil
	}
	var uris []string
	for _, cand := range result.Candidates {
		if cand == nil || cand.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk != nil && chunk.Web != nil && chunk.Web.URI != "" {
				uris = append(uris, chunk.Web.URI)
			}
		}
	}
	return uris
}

func logCallError(op string, err error) {
	logger.ErrorWithFields("generative call failed", logger.Fields{
		"operation": op,
		"error":     err.Error(),
	})
}
