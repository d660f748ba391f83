package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bartal/portfolio/internal/preferences/domain"
)

const (
	prefsKeyPrefix = "portfolio:prefs:" // portfolio:prefs:{session_id}
	defaultTTL     = 30 * 24 * time.Hour
)

// RedisStore handles Redis operations for preferences
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a new RedisStore. A zero ttl uses 30 days.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Name() string { return "redis" }

// Get retrieves preferences by session id
func (r *RedisStore) Get(ctx context.Context, sessionID string) (*domain.Preferences, error) {
	data, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	var prefs domain.Preferences
	if err := json.Unmarshal([]byte(data), &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	return &prefs, nil
}

// Put stores preferences and refreshes their TTL
func (r *RedisStore) Put(ctx context.Context, prefs *domain.Preferences) error {
	if prefs.UpdatedAt.IsZero() {
		prefs.UpdatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := r.client.Set(ctx, r.key(prefs.SessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store preferences: %w", err)
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) key(sessionID string) string {
	return fmt.Sprintf("%s%s", prefsKeyPrefix, sessionID)
}
