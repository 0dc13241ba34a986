package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// Store keeps independent sessions in memory, keyed by ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	opts     Options
}

// NewStore creates an empty store; opts apply to every session it creates.
func NewStore(opts Options) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		opts:     opts,
	}
}

// Create opens a new session on the given variant.
func (st *Store) Create(initial types.Variant) *Session {
	s := New(initial, st.opts)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	log.Printf("[session] created %s (template=%s)", s.ID, s.Variant())
	return s
}

// Get returns the session or nil when it does not exist.
func (st *Store) Get(id uuid.UUID) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Delete removes a session and reports whether it existed.
func (st *Store) Delete(id uuid.UUID) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// Len returns the number of open sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Prune drops sessions not used since cutoff and returns how many were removed.
func (st *Store) Prune(cutoff time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.LastUsed().Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
