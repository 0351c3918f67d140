// Package credstore persists the session token and user profile between
// runs. Every operation is best-effort: failures are logged and reported to
// callers as absence, never as errors, so a missing or broken backend only
// costs the user a fresh login.
package credstore

import (
	"context"
	"sync"
)

// Store is a best-effort key/value store for credentials.
type Store interface {
	// Load returns the value stored under key. ok is false when the key was
	// never set and also when the backend cannot be read.
	Load(ctx context.Context, key string) (value string, ok bool)
	Save(ctx context.Context, key, value string)
	Clear(ctx context.Context, key string)
}

// Unavailable is the Store used when there is no persistent storage. Loads
// report absence and writes are dropped.
type Unavailable struct{}

func (Unavailable) Load(context.Context, string) (string, bool) { return "", false }
func (Unavailable) Save(context.Context, string, string)        {}
func (Unavailable) Clear(context.Context, string)               {}

// MemoryStore keeps values for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Load(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Save(_ context.Context, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *MemoryStore) Clear(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}
