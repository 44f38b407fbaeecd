// Package session holds the in-memory registry of authenticated sessions.
//
// Sessions are deliberately not persisted: a process restart signs everyone
// out, and logout deletes the server-side record so the client's cookie is
// dead on arrival even if the token inside it has not expired yet. Each
// connected actor holds its own session record; there is no process-global
// "current user".
package session

import (
	"sync"
	"time"

	"github.com/rs/xid"
)

// DefaultTTL is how long a session stays valid without an explicit logout.
const DefaultTTL = 24 * time.Hour

// Session records one authenticated identity.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Manager is a mutex-guarded map of live sessions keyed by session ID.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration

	// now is swappable in tests to exercise expiry without sleeping.
	now func() time.Time
}

// NewManager creates a Manager with the given session lifetime.
// A non-positive ttl falls back to DefaultTTL.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Start creates a session for the given user and returns it.
func (m *Manager) Start(userID string) Session {
	now := m.now()
	s := Session{
		ID:        xid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

// Get returns the session for id if it exists and has not expired.
// Expired sessions are removed on access.
func (m *Manager) Get(id string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, false
	}
	if m.now().After(s.ExpiresAt) {
		delete(m.sessions, id)
		return Session{}, false
	}
	return s, true
}

// End removes the session for id. Ending a session that does not exist
// (already ended, expired, or never started) is a no-op, never an error.
func (m *Manager) End(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len reports the number of live sessions, counting any that have expired
// but not yet been evicted.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
