// Package sessions holds the per-session editing state in memory. Nothing
// survives a restart; the only durable form of a quotation is an exported
// document.
package sessions

import (
	"sync"
	"time"

	"github.com/pocketbase/pocketbase/tools/security"

	"quotegen/services"
)

// CookieName is the session-identifier cookie.
const CookieName = "quote_session"

// Store maps session IDs to live editing state. The mutex guards the map;
// each State has a single writer (its own browser session).
type Store struct {
	mu     sync.Mutex
	states map[string]*services.State
	now    func() time.Time
}

// NewStore returns an empty session store using the real clock.
func NewStore() *Store {
	return &Store{
		states: make(map[string]*services.State),
		now:    time.Now,
	}
}

// Get returns the state for an existing session ID.
func (s *Store) Get(id string) (*services.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[id]
	return state, ok
}

// Create allocates a fresh session with default state and returns its ID.
func (s *Store) Create() (string, *services.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := security.RandomString(32)
	state := services.NewState(s.now())
	s.states[id] = state
	return id, state
}

// Drop removes a session. Used on logout.
func (s *Store) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, id)
}
