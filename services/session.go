package services

import (
	"sync"

	"github.com/google/uuid"

	"trend-studio/models"
)

// ViewState is the studio screen a session is currently on.
type ViewState string

const (
	StateTrends     ViewState = "trends"
	StateSelecting  ViewState = "selecting-variation"
	StateEditing    ViewState = "editing"
	StatePreviewing ViewState = "previewing"
)

// Session is the in-memory editing state of one browser session. All state
// lives behind the mutex; generation results are only committed while the
// operation token that started them is still current, so a superseded
// operation's result is dropped instead of clobbering newer state.
type Session struct {
	mu sync.Mutex

	ID         string
	state      ViewState
	topics     []models.TrendingTopic
	variations []*models.GeneratedBlog
	draft      *models.GeneratedBlog
	topicTitle string
	opToken    string
}

func newSession(id string) *Session {
	return &Session{ID: id, state: StateTrends}
}

// begin claims the session for one mutating operation. It returns a token the
// operation must present to commit, or ErrOperationInFlight when another
// operation holds the session.
func (s *Session) begin() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opToken != "" {
		return "", ErrOperationInFlight
	}
	s.opToken = uuid.NewString()
	return s.opToken, nil
}

// finish releases the claim if token is still current.
func (s *Session) finish(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opToken == token {
		s.opToken = ""
	}
}

// commit applies fn under the lock if token is still the active claim.
// A stale token means the operation was superseded; its result is discarded.
func (s *Session) commit(token string, fn func(*Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opToken != token {
		return false
	}
	fn(s)
	return true
}

// view reads a consistent snapshot under the lock.
func (s *Session) view(fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

// State returns the session's current view state.
func (s *Session) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// DefaultSessionID is used when a request carries no session header.
const DefaultSessionID = "default"

// SessionRegistry holds every live session for the process lifetime.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating it on first use. An empty id maps
// to the default session.
func (r *SessionRegistry) Get(id string) *Session {
	if id == "" {
		id = DefaultSessionID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		s = newSession(id)
		r.sessions[id] = s
	}
	return s
}
