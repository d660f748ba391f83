package repository

import (
	"context"
	"sync"
	"time"

	"github.com/bartal/portfolio/internal/preferences/domain"
)

// MemoryStore keeps preferences in process memory. Used when no Redis address
// is configured; contents are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]domain.Preferences
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]domain.Preferences)}
}

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*domain.Preferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefs, ok := m.items[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &prefs, nil
}

func (m *MemoryStore) Put(_ context.Context, prefs *domain.Preferences) error {
	if prefs.UpdatedAt.IsZero() {
		prefs.UpdatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	m.items[prefs.SessionID] = *prefs
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }
