package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a studio lifecycle event.
type EventType string

const (
	DraftGenerated EventType = "draft.generated"
	DraftRefined   EventType = "draft.refined"
	DraftExtended  EventType = "draft.extended"
	PostPublished  EventType = "post.published"
)

// BaseEvent is the envelope shared by every event.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// GetType returns the event type.
func (e BaseEvent) GetType() EventType {
	return e.Type
}

// NewBase builds the envelope for a studio event.
func NewBase(t EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now(),
		Source:    "studio",
		Version:   "1.0",
	}
}

// DraftGeneratedEvent fires once per successfully generated draft (including
// each variation of a parallel run).
type DraftGeneratedEvent struct {
	BaseEvent
	SessionID  string `json:"session_id"`
	DraftID    string `json:"draft_id"`
	TopicTitle string `json:"topic_title"`
	Style      string `json:"style"`
	WordCount  int    `json:"word_count"`
}

// DraftRefinedEvent fires after an instruction-based refinement or a style
// rewrite completes.
type DraftRefinedEvent struct {
	BaseEvent
	SessionID   string `json:"session_id"`
	DraftID     string `json:"draft_id"`
	Instruction string `json:"instruction,omitempty"`
	Style       string `json:"style,omitempty"`
}

// DraftExtendedEvent fires after a draft was extended with a new section.
type DraftExtendedEvent struct {
	BaseEvent
	SessionID string `json:"session_id"`
	DraftID   string `json:"draft_id"`
	NewTopic  string `json:"new_topic"`
}

// PostPublishedEvent fires after a successful publish to the blogging platform.
type PostPublishedEvent struct {
	BaseEvent
	SessionID string `json:"session_id"`
	DraftID   string `json:"draft_id"`
	BlogID    string `json:"blog_id"`
	PostID    string `json:"post_id"`
	PostURL   string `json:"post_url"`
}
