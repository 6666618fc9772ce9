package session

import (
	"sync"
	"time"
)

// Store keeps session state in memory for the lifetime of a page session.
// Nothing here survives a restart; the only durable client preference is
// the theme cookie, which never touches the store.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*State
	ttl      time.Duration
}

// NewStore creates a session store whose entries expire after ttl of
// inactivity. Expired entries are pruned opportunistically on access, so no
// background timer is needed.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*State),
		ttl:      ttl,
	}
}

// Get returns the state for a session ID, creating it on first sight.
func (s *Store) Get(id string) *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()

	state, ok := s.sessions[id]
	if !ok {
		state = newState()
		s.sessions[id] = state
	}
	return state
}

// Len reports how many live sessions the store holds.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	return len(s.sessions)
}

func (s *Store) pruneLocked() {
	cutoff := time.Now().Add(-s.ttl)
	for id, state := range s.sessions {
		state.mu.Lock()
		stale := state.lastSeen.Before(cutoff)
		state.mu.Unlock()
		if stale {
			delete(s.sessions, id)
		}
	}
}
