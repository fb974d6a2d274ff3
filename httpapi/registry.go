// Session registry: the only cross-session shared state in the process.
// Sessions themselves are single-actor; the per-entry mutex serializes
// concurrent requests hitting the same session id so the core never
// needs to be thread-safe.

package httpapi

import (
	"sync"

	"github.com/google/uuid"

	"github.com/baggage-sim/baggage-sim/sim"
)

type sessionEntry struct {
	mu   sync.Mutex
	sess *sim.Session
}

// registry maps session ids to isolated session instances.
type registry struct {
	mu      sync.RWMutex
	entries map[string]*sessionEntry
}

func newRegistry() *registry {
	return &registry{entries: make(map[string]*sessionEntry)}
}

// add stores a new session under a fresh uuid and returns the id.
func (r *registry) add(sess *sim.Session) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.entries[id] = &sessionEntry{sess: sess}
	r.mu.Unlock()
	ActiveSessions.Inc()
	return id
}

// get returns the entry for id, or nil when unknown.
func (r *registry) get(id string) *sessionEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[id]
}

// remove drops the session for id, reporting whether it existed.
func (r *registry) remove(id string) bool {
	r.mu.Lock()
	_, ok := r.entries[id]
	delete(r.entries, id)
	r.mu.Unlock()
	if ok {
		ActiveSessions.Dec()
	}
	return ok
}

// len returns the number of live sessions.
func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// withSession runs fn with the entry's session while holding its lock,
// so actions on one session never interleave.
func (e *sessionEntry) withSession(fn func(*sim.Session)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.sess)
}
