// ABOUTME: Sessions is an in-process registry of per-conversation windows
// ABOUTME: Serializes turns per session so one window never sees concurrent turns
package memory

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions maps session identifiers to conversation windows. Windows are
// created on first use with a fixed capacity and live only for the process
// lifetime; nothing is persisted.
type Sessions struct {
	mu       sync.Mutex
	capacity int
	sessions map[string]*session
}

type session struct {
	mu     sync.Mutex
	window *Window
}

// NewSessions creates a registry whose windows retain at most k exchanges.
func NewSessions(k int) *Sessions {
	return &Sessions{
		capacity: k,
		sessions: make(map[string]*session),
	}
}

// NewID returns a fresh session identifier.
func NewID() string {
	return uuid.New().String()
}

// Do runs fn with the session's window under the per-session lock, creating
// the window on first use. Concurrent turns against the same session are
// serialized here; turns against different sessions proceed independently.
func (s *Sessions) Do(id string, fn func(w *Window) error) error {
	sess := s.get(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.window)
}

// History returns the session's rendered history block, or "" for a session
// that has not spoken yet.
func (s *Sessions) History(id string) string {
	var out string
	_ = s.Do(id, func(w *Window) error {
		out = w.History()
		return nil
	})
	return out
}

// Reset discards the session's window. The next turn starts fresh.
func (s *Sessions) Reset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count returns the number of live sessions.
func (s *Sessions) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Sessions) get(id string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{window: NewWindow(s.capacity)}
		s.sessions[id] = sess
	}
	return sess
}
