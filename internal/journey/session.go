// internal/journey/session.go
//
// A Session records how one learner moved through the stages. It is fed by
// the stage controller's observer hook and turned into a Report for export.

package journey

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

// Session tracks visits and transitions for a single run of the TUI.
type Session struct {
	mu          sync.Mutex
	id          string
	startedAt   time.Time
	visits      map[stage.ID]int
	transitions int
	restarts    int
	completed   bool
	now         func() time.Time
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithClock overrides the time source.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithID overrides the generated session id.
func WithID(id string) SessionOption {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// NewSession starts a session on the given stage. The start stage counts as
// the first visit.
func NewSession(start stage.ID, opts ...SessionOption) *Session {
	s := &Session{
		id:     uuid.NewString(),
		visits: map[stage.ID]int{},
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.startedAt = s.now()
	if start != "" {
		s.visits[start] = 1
	}
	return s
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// StartedAt returns when the session began.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Observe records a transition. Its signature matches stage.Observer.
func (s *Session) Observe(t stage.Transition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transitions++
	s.visits[t.To.ID]++
	if t.Kind == stage.KindRestart {
		s.restarts++
	}
	if t.To.IsLast() {
		s.completed = true
	}
}

// Visits returns how many times id has been entered.
func (s *Session) Visits(id stage.ID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visits[id]
}

// Transitions returns the number of recorded transitions.
func (s *Session) Transitions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitions
}

// Completed reports whether the last stage has been reached at least once.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Report snapshots the session against reg. Milestones and log lines are
// copied into the report as given.
func (s *Session) Report(reg *stage.Registry, milestones, log []string) Report {
	if reg == nil {
		reg = stage.Default()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	generated := s.now()
	r := Report{
		SessionID:   s.id,
		StartedAt:   s.startedAt.UTC(),
		GeneratedAt: generated.UTC(),
		Duration:    generated.Sub(s.startedAt).Round(time.Second).String(),
		Transitions: s.transitions,
		Restarts:    s.restarts,
		Completed:   s.completed,
		Milestones:  append([]string(nil), milestones...),
		Log:         append([]string(nil), log...),
	}
	for _, st := range reg.Stages() {
		r.Stages = append(r.Stages, StageVisit{
			ID:     st.ID,
			Title:  st.Title,
			Order:  st.Order,
			Visits: s.visits[st.ID],
		})
	}
	return r
}
