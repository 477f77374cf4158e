package services

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"trend-studio/events"
	"trend-studio/kafka"
	"trend-studio/logger"
	"trend-studio/models"
	"trend-studio/parser"
	"trend-studio/preview"
	"trend-studio/publisher"
)

// DraftGenerator is the slice of the generator client the studio needs.
type DraftGenerator interface {
	GenerateDraft(ctx context.Context, topic models.TrendingTopic, style models.BlogStyle, sourceExcerpt string) (*models.GeneratedBlog, error)
	RefineDraft(ctx context.Context, blog *models.GeneratedBlog, instruction string) error
	ExtendDraft(ctx context.Context, blog *models.GeneratedBlog, newTopic string) error
}

// DraftStore persists explicit draft snapshots, one per session.
type DraftStore interface {
	UpsertBySession(ctx context.Context, s *models.DraftSnapshot) error
	FindBySession(ctx context.Context, sessionID string) (*models.DraftSnapshot, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

// StudioService drives the editing flow: variation generation, selection,
// manual edits, model-backed rewrite/refine/extend, preview and snapshots.
type StudioService struct {
	gen      DraftGenerator
	sessions *SessionRegistry
	drafts   DraftStore
	producer kafka.Producer

	// excerptFn fetches and extracts article text from a topic's source URL.
	// Swappable in tests; the default goes out to the network.
	excerptFn func(ctx context.Context, url string) string
}

func NewStudioService(gen DraftGenerator, sessions *SessionRegistry, drafts DraftStore, producer kafka.Producer) *StudioService {
	if producer == nil {
		producer = kafka.NopProducer{}
	}
	return &StudioService{
		gen:       gen,
		sessions:  sessions,
		drafts:    drafts,
		producer:  producer,
		excerptFn: parser.SourceExcerpt,
	}
}

// VariationsInput names a topic either by id (from the session's trend list)
// or as free text.
type VariationsInput struct {
	TopicID string
	Topic   string
}

// VariationsResult carries every variation that succeeded plus the per-style
// failure messages. The run fails outright only when all styles fail.
type VariationsResult struct {
	TopicTitle string
	Drafts     []*models.GeneratedBlog
	Failures   map[models.BlogStyle]string
}

// GenerateVariations drafts the topic in all four variation styles in
// parallel and moves the session to selecting-variation. Partial successes
// are returned; the session stays on trends when every style fails.
func (s *StudioService) GenerateVariations(ctx context.Context, sessionID string, in VariationsInput) (*VariationsResult, error) {
	sess := s.sessions.Get(sessionID)
	topic, err := s.resolveTopic(sess, in)
	if err != nil {
		return nil, err
	}

	token, err := sess.begin()
	if err != nil {
		return nil, err
	}
	defer sess.finish(token)

	excerpt := ""
	if topic.SourceURL != "" {
		excerpt = s.excerptFn(ctx, topic.SourceURL)
	}

	drafts := make([]*models.GeneratedBlog, len(models.VariationStyles))
	failures := make(map[models.BlogStyle]string)
	var g errgroup.Group
	var failMu sync.Mutex

	for i, style := range models.VariationStyles {
		i, style := i, style
		g.Go(func() error {
			blog, genErr := s.gen.GenerateDraft(ctx, topic, style, excerpt)
			if genErr != nil {
				failMu.Lock()
				failures[style] = genErr.Error()
				failMu.Unlock()
				logger.WarnWithFields("variation failed", logger.Fields{
					"style": string(style),
					"error": genErr.Error(),
				})
				return nil
			}
			drafts[i] = blog
			return nil
		})
	}
	_ = g.Wait()

	ok := make([]*models.GeneratedBlog, 0, len(drafts))
	for _, d := range drafts {
		if d != nil {
			ok = append(ok, d)
		}
	}
	if len(ok) == 0 {
		return nil, ErrAllVariationsFailed
	}

	committed := sess.commit(token, func(sess *Session) {
		sess.state = StateSelecting
		sess.variations = ok
		sess.topicTitle = topic.Title
		sess.draft = nil
	})
	if !committed {
		return nil, ErrOperationInFlight
	}

	for _, d := range ok {
		s.emit(events.DraftGeneratedEvent{
			BaseEvent:  events.NewBase(events.DraftGenerated),
			SessionID:  sessionID,
			DraftID:    d.ID,
			TopicTitle: topic.Title,
			Style:      string(d.Style),
			WordCount:  preview.WordCount(d.Content),
		})
	}

	return &VariationsResult{TopicTitle: topic.Title, Drafts: ok, Failures: failures}, nil
}

// GenerateSingle drafts the topic in one style and moves the session straight
// to editing.
func (s *StudioService) GenerateSingle(ctx context.Context, sessionID, topic string, style models.BlogStyle) (*models.GeneratedBlog, error) {
	if !models.ValidStyle(style) {
		return nil, ErrInvalidStyle
	}
	if strings.TrimSpace(topic) == "" {
		return nil, ErrUnknownTopic
	}

	sess := s.sessions.Get(sessionID)
	token, err := sess.begin()
	if err != nil {
		return nil, err
	}
	defer sess.finish(token)

	blog, err := s.gen.GenerateDraft(ctx, models.TrendingTopic{Title: topic}, style, "")
	if err != nil {
		return nil, err
	}

	if !sess.commit(token, func(sess *Session) {
		sess.state = StateEditing
		sess.draft = blog
		sess.topicTitle = topic
		sess.variations = nil
	}) {
		return nil, ErrOperationInFlight
	}

	s.emit(events.DraftGeneratedEvent{
		BaseEvent:  events.NewBase(events.DraftGenerated),
		SessionID:  sessionID,
		DraftID:    blog.ID,
		TopicTitle: topic,
		Style:      string(style),
		WordCount:  preview.WordCount(blog.Content),
	})
	return blog, nil
}

// SelectVariation promotes one generated variation to the active draft and
// moves the session to editing. The other variations are dropped.
func (s *StudioService) SelectVariation(sessionID, draftID string) (*models.GeneratedBlog, error) {
	sess := s.sessions.Get(sessionID)

	var selected *models.GeneratedBlog
	sess.view(func(sess *Session) {
		for _, v := range sess.variations {
			if v.ID == draftID {
				selected = v
				break
			}
		}
		if selected != nil {
			sess.state = StateEditing
			sess.draft = selected
			sess.variations = nil
		}
	})
	if selected == nil {
		return nil, ErrUnknownDraft
	}
	return selected, nil
}

// CurrentDraft returns the session's active draft and view state.
func (s *StudioService) CurrentDraft(sessionID string) (*models.GeneratedBlog, ViewState, error) {
	sess := s.sessions.Get(sessionID)
	var (
		draft *models.GeneratedBlog
		state ViewState
	)
	sess.view(func(sess *Session) {
		draft = sess.draft
		state = sess.state
	})
	if draft == nil {
		return nil, state, ErrNoDraft
	}
	return draft, state, nil
}

// UpdateDraftInput carries the manual edits of a PUT. Nil fields are left
// untouched. ImageSlot replaces one image slot with a caller-supplied URL.
type UpdateDraftInput struct {
	Title     *string
	Content   *string
	ImageSlot *int
	ImageURL  *string
}

// UpdateDraft applies manual edits in place and returns to editing.
func (s *StudioService) UpdateDraft(sessionID string, in UpdateDraftInput) (*models.GeneratedBlog, error) {
	sess := s.sessions.Get(sessionID)

	var (
		draft  *models.GeneratedBlog
		slotOK = true
	)
	sess.view(func(sess *Session) {
		if sess.draft == nil {
			return
		}
		draft = sess.draft
		if in.Title != nil {
			draft.Title = *in.Title
		}
		if in.Content != nil {
			draft.Content = *in.Content
		}
		if in.ImageSlot != nil && in.ImageURL != nil {
			if *in.ImageSlot < 0 || *in.ImageSlot >= len(draft.Images) {
				slotOK = false
				return
			}
			draft.Images[*in.ImageSlot] = models.BlogImage{URL: *in.ImageURL, IsAIGenerated: false}
		}
		sess.state = StateEditing
	})
	if draft == nil {
		return nil, ErrNoDraft
	}
	if !slotOK {
		return nil, ErrInvalidImageSlot
	}
	return draft, nil
}

// RewriteDraft regenerates the active draft's prose in another style via an
// instruction-level refinement. Images and accumulated references survive.
func (s *StudioService) RewriteDraft(ctx context.Context, sessionID string, style models.BlogStyle) (*models.GeneratedBlog, error) {
	if !models.ValidStyle(style) {
		return nil, ErrInvalidStyle
	}
	instruction := "Rewrite the entire post in the " + string(style) + " style. Keep the subject and facts."
	blog, err := s.mutateDraft(ctx, sessionID, func(ctx context.Context, blog *models.GeneratedBlog) error {
		if err := s.gen.RefineDraft(ctx, blog, instruction); err != nil {
			return err
		}
		blog.Style = style
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(events.DraftRefinedEvent{
		BaseEvent: events.NewBase(events.DraftRefined),
		SessionID: sessionID,
		DraftID:   blog.ID,
		Style:     string(style),
	})
	return blog, nil
}

// RefineDraft applies a free-form instruction to the active draft.
func (s *StudioService) RefineDraft(ctx context.Context, sessionID, instruction string) (*models.GeneratedBlog, error) {
	blog, err := s.mutateDraft(ctx, sessionID, func(ctx context.Context, blog *models.GeneratedBlog) error {
		return s.gen.RefineDraft(ctx, blog, instruction)
	})
	if err != nil {
		return nil, err
	}

	s.emit(events.DraftRefinedEvent{
		BaseEvent:   events.NewBase(events.DraftRefined),
		SessionID:   sessionID,
		DraftID:     blog.ID,
		Instruction: instruction,
	})
	return blog, nil
}

// ExtendDraft appends a section on newTopic to the active draft.
func (s *StudioService) ExtendDraft(ctx context.Context, sessionID, newTopic string) (*models.GeneratedBlog, error) {
	blog, err := s.mutateDraft(ctx, sessionID, func(ctx context.Context, blog *models.GeneratedBlog) error {
		return s.gen.ExtendDraft(ctx, blog, newTopic)
	})
	if err != nil {
		return nil, err
	}

	s.emit(events.DraftExtendedEvent{
		BaseEvent: events.NewBase(events.DraftExtended),
		SessionID: sessionID,
		DraftID:   blog.ID,
		NewTopic:  newTopic,
	})
	return blog, nil
}

// mutateDraft runs one model-backed mutation under the in-flight guard. On
// failure the draft and state are untouched, so the editor keeps what it had.
func (s *StudioService) mutateDraft(ctx context.Context, sessionID string, fn func(context.Context, *models.GeneratedBlog) error) (*models.GeneratedBlog, error) {
	sess := s.sessions.Get(sessionID)

	var draft *models.GeneratedBlog
	sess.view(func(sess *Session) { draft = sess.draft })
	if draft == nil {
		return nil, ErrNoDraft
	}

	token, err := sess.begin()
	if err != nil {
		return nil, err
	}
	defer sess.finish(token)

	// Work on a copy so a failed call cannot leave a half-merged draft.
	work := *draft
	if err := fn(ctx, &work); err != nil {
		return nil, err
	}

	if !sess.commit(token, func(sess *Session) {
		*sess.draft = work
		sess.state = StateEditing
	}) {
		return nil, ErrOperationInFlight
	}
	return draft, nil
}

// Preview renders the active draft for the feed or article view and moves the
// session to previewing.
func (s *StudioService) Preview(sessionID string, mode preview.Mode) (*preview.Rendering, error) {
	sess := s.sessions.Get(sessionID)

	var rendering *preview.Rendering
	sess.view(func(sess *Session) {
		if sess.draft == nil {
			return
		}
		r := preview.Render(sess.draft, mode)
		rendering = &r
		sess.state = StatePreviewing
	})
	if rendering == nil {
		return nil, ErrNoDraft
	}
	return rendering, nil
}

// HTML returns the publish-ready HTML of the active draft.
func (s *StudioService) HTML(sessionID string) (string, error) {
	draft, _, err := s.CurrentDraft(sessionID)
	if err != nil {
		return "", err
	}
	return publisher.ConvertToFullHTML(draft), nil
}

// SaveDraft snapshots the active draft to storage, one snapshot per session.
func (s *StudioService) SaveDraft(ctx context.Context, sessionID string) error {
	sess := s.sessions.Get(sessionID)

	var snapshot *models.DraftSnapshot
	sess.view(func(sess *Session) {
		if sess.draft == nil {
			return
		}
		snapshot = &models.DraftSnapshot{
			SessionID:  sessionID,
			TopicTitle: sess.topicTitle,
			Blog:       *sess.draft,
		}
	})
	if snapshot == nil {
		return ErrNoDraft
	}
	return s.drafts.UpsertBySession(ctx, snapshot)
}

// SavedDraft loads the session's stored snapshot without touching the live
// editing state.
func (s *StudioService) SavedDraft(ctx context.Context, sessionID string) (*models.DraftSnapshot, error) {
	return s.drafts.FindBySession(ctx, sessionID)
}

// DiscardSavedDraft removes the session's stored snapshot. The live editing
// state is untouched.
func (s *StudioService) DiscardSavedDraft(ctx context.Context, sessionID string) error {
	return s.drafts.DeleteBySession(ctx, sessionID)
}

// resolveTopic turns the variations input into a concrete topic: by id from
// the session's current trend list, or as free text.
func (s *StudioService) resolveTopic(sess *Session, in VariationsInput) (models.TrendingTopic, error) {
	if in.TopicID != "" {
		var found *models.TrendingTopic
		sess.view(func(sess *Session) {
			for i := range sess.topics {
				if sess.topics[i].ID == in.TopicID {
					found = &sess.topics[i]
					break
				}
			}
		})
		if found == nil {
			return models.TrendingTopic{}, ErrUnknownTopic
		}
		return *found, nil
	}
	if strings.TrimSpace(in.Topic) == "" {
		return models.TrendingTopic{}, ErrUnknownTopic
	}
	return models.TrendingTopic{Title: strings.TrimSpace(in.Topic)}, nil
}

func (s *StudioService) emit(event any) {
	type typed interface{ GetType() events.EventType }
	if err := s.producer.Emit(kafka.TopicStudioEvents, event); err != nil {
		fields := logger.Fields{"error": err.Error()}
		if t, ok := event.(typed); ok {
			fields["type"] = string(t.GetType())
		}
		logger.WarnWithFields("event emit failed", fields)
	}
}
