package session

import (
	"context"
	"sync"
	"time"
)

// Store persists sessions by token.
type Store interface {
	// Get returns ErrNotFound for unknown tokens and ErrExpired for stale ones.
	Get(ctx context.Context, token string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, token string) error
}

// MemoryStore keeps sessions in process. Use it for development and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if s.IsExpired() {
		return nil, ErrExpired
	}

	values := make(map[string]any, len(s.Values))
	for k, v := range s.Values {
		values[k] = v
	}
	s.Values = values
	return &s, nil
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	cp := *s
	cp.Values = make(map[string]any, len(s.Values))
	for k, v := range s.Values {
		cp.Values[k] = v
	}
	cp.dirty, cp.isNew = false, false

	m.mu.Lock()
	m.sessions[s.Token] = cp
	m.mu.Unlock()

	s.ClearDirty()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

func ttl(s *Session) time.Duration {
	return time.Until(s.ExpiresAt)
}
