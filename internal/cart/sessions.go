package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager maps session ids to cart stores. Each browser session gets its own
// store; there is no cross-device sync. Idle sessions are purged after ttl.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*session
}

type session struct {
	store    *Store
	lastSeen time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Session returns the store for id, minting a new session when id is empty or
// unknown (expired sessions count as unknown). The returned id must be echoed
// back to the client so follow-up requests hit the same cart.
func (m *Manager) Session(id string) (string, *Store) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if id != "" {
		if sess, ok := m.sessions[id]; ok && now.Sub(sess.lastSeen) <= m.ttl {
			sess.lastSeen = now
			return id, sess.store
		}
	}

	id = uuid.NewString()
	store := NewStore()
	m.sessions[id] = &session{store: store, lastSeen: now}
	return id, store
}

// Purge drops sessions idle for longer than the ttl and returns how many were
// removed. Intended to run periodically from the server's housekeeping loop.
func (m *Manager) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for id, sess := range m.sessions {
		if now.Sub(sess.lastSeen) > m.ttl {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
