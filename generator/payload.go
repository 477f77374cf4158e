package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"trend-studio/models"
	"trend-studio/slug"
)

// draftPayload is the wire shape of a drafting/refinement response.
type draftPayload struct {
	Title           string          `json:"title"`
	Content         string          `json:"content"`
	MetaTitle       string          `json:"metaTitle"`
	MetaDescription string          `json:"metaDescription"`
	Slug            string          `json:"slug"`
	Schema          string          `json:"schema"`
	Metrics         *metricsPayload `json:"metrics"`
}

type metricsPayload struct {
	SEOScore         int `json:"seoScore"`
	KeywordScore     int `json:"keywordScore"`
	ReadabilityScore int `json:"readabilityScore"`
	AIScore          int `json:"aiScore"`
	HumanScore       int `json:"humanScore"`
}

// extendPayload is the wire shape of an extend response.
type extendPayload struct {
	Content string          `json:"content"`
	Metrics *metricsPayload `json:"metrics"`
}

// parseDraftPayload validates shape rather than trusting the model: a payload
// without title, content or metrics is rejected with a typed error.
func parseDraftPayload(raw []byte) (*draftPayload, error) {
	var p draftPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("draft response is not valid JSON: %w", err)
	}
	if strings.TrimSpace(p.Title) == "" {
		return nil, fmt.Errorf("draft response missing title")
	}
	if strings.TrimSpace(p.Content) == "" {
		return nil, fmt.Errorf("draft response missing content")
	}
	if p.Metrics == nil {
		return nil, fmt.Errorf("draft response missing metrics")
	}
	if p.Slug == "" {
		p.Slug = slug.Generate(p.Title)
	}
	return &p, nil
}

func parseExtendPayload(raw []byte) (*extendPayload, error) {
	var p extendPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("extend response is not valid JSON: %w", err)
	}
	if strings.TrimSpace(p.Content) == "" {
		return nil, fmt.Errorf("extend response missing content")
	}
	if p.Metrics == nil {
		return nil, fmt.Errorf("extend response missing metrics")
	}
	return &p, nil
}

func (m *metricsPayload) toModel() models.BlogMetrics {
	return models.BlogMetrics{
		SEOScore:         clampScore(m.SEOScore),
		KeywordScore:     clampScore(m.KeywordScore),
		ReadabilityScore: clampScore(m.ReadabilityScore),
		AIScore:          clampScore(m.AIScore),
		HumanScore:       clampScore(m.HumanScore),
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
