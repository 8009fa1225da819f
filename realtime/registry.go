package realtime

import "sync"

// Registry is the authoritative in-memory map from user id to the single
// active connection. It is process-local and lost on restart; every user
// appears offline until they reconnect. Owned by the Router, which serializes
// all mutation through the mutex here.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]Conn
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]Conn)}
}

// Register inserts or overwrites the entry for userID. Last write wins: a
// superseded handle is not closed, it simply becomes unreachable via lookup.
func (r *Registry) Register(userID string, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[userID] = conn
}

// Unregister removes the entry only while it still holds the same handle,
// so a stale disconnect cannot evict a newer connection. Reports whether
// removal happened.
func (r *Registry) Unregister(userID string, conn Conn) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.conns[userID]; ok && current == conn {
		delete(r.conns, userID)
		return true
	}
	return false
}

func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conns[userID]
	return ok
}

func (r *Registry) Lookup(userID string) (Conn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.conns[userID]
	return conn, ok
}

// Each calls fn for every registered connection on a snapshot, so fn may
// write to connections without holding the registry lock.
func (r *Registry) Each(fn func(userID string, conn Conn)) {
	r.mu.RLock()
	snapshot := make(map[string]Conn, len(r.conns))
	for userID, conn := range r.conns {
		snapshot[userID] = conn
	}
	r.mu.RUnlock()

	for userID, conn := range snapshot {
		fn(userID, conn)
	}
}
