package repository

import (
	"context"

	"github.com/bartal/portfolio/internal/preferences/domain"
)

// Store persists preferences keyed by session id.
type Store interface {
	Get(ctx context.Context, sessionID string) (*domain.Preferences, error)
	Put(ctx context.Context, prefs *domain.Preferences) error
	Ping(ctx context.Context) error
	Name() string
}
