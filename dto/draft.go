package dto

import (
	"trend-studio/models"
	"trend-studio/preview"
)

// DraftDTO exposes a generated draft to API consumers, with the advisory
// word-count badge the editor shows.
type DraftDTO struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	Style      string             `json:"style"`
	Images     []models.BlogImage `json:"images"`
	SEOData    models.SEOData     `json:"seoData"`
	Metrics    models.BlogMetrics `json:"metrics"`
	References []string           `json:"references,omitempty"`
	WordCount  int                `json:"wordCount"`
}

// NewDraftDTO constructs DraftDTO from models.GeneratedBlog.
func NewDraftDTO(b *models.GeneratedBlog) DraftDTO {
	return DraftDTO{
		ID:         b.ID,
		Title:      b.Title,
		Content:    b.Content,
		Style:      string(b.Style),
		Images:     b.Images,
		SEOData:    b.SEOData,
		Metrics:    b.Metrics,
		References: b.References,
		WordCount:  preview.WordCount(b.Content),
	}
}

// DraftStateDTO wraps the active draft with the session's view state.
type DraftStateDTO struct {
	State string   `json:"state"`
	Draft DraftDTO `json:"draft"`
}

// VariationsDTO carries every variation that succeeded plus per-style failure
// messages from the parallel run.
type VariationsDTO struct {
	TopicTitle string            `json:"topicTitle"`
	Drafts     []DraftDTO        `json:"drafts"`
	Failures   map[string]string `json:"failures,omitempty"`
}

// NewVariationsDTO constructs VariationsDTO from a variations run.
func NewVariationsDTO(topicTitle string, drafts []*models.GeneratedBlog, failures map[models.BlogStyle]string) VariationsDTO {
	out := VariationsDTO{TopicTitle: topicTitle, Drafts: make([]DraftDTO, 0, len(drafts))}
	for _, d := range drafts {
		out.Drafts = append(out.Drafts, NewDraftDTO(d))
	}
	if len(failures) > 0 {
		out.Failures = make(map[string]string, len(failures))
		for style, msg := range failures {
			out.Failures[string(style)] = msg
		}
	}
	return out
}

// SnapshotDTO exposes a stored draft snapshot.
type SnapshotDTO struct {
	SessionID  string   `json:"sessionId"`
	TopicTitle string   `json:"topicTitle"`
	Draft      DraftDTO `json:"draft"`
	UpdatedAt  string   `json:"updatedAt"`
}

// NewSnapshotDTO constructs SnapshotDTO from models.DraftSnapshot.
func NewSnapshotDTO(s *models.DraftSnapshot) SnapshotDTO {
	return SnapshotDTO{
		SessionID:  s.SessionID,
		TopicTitle: s.TopicTitle,
		Draft:      NewDraftDTO(&s.Blog),
		UpdatedAt:  s.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
