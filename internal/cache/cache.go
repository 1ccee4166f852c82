// Package cache keeps in-progress wizard drafts in Redis so an applicant can
// resume a session without an account. Postgres stays the system of record
// for saved applications.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/thekey8/prequal-service/internal/config"
	"github.com/thekey8/prequal-service/internal/models"
)

// ErrDraftNotFound is returned when no draft exists for a session id.
var ErrDraftNotFound = errors.New("draft not found")

// Store holds draft form states with a TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

// NewStore connects to Redis using the configured address.
func NewStore(cfg *config.Config, log *logrus.Logger) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return &Store{
		client: client,
		ttl:    time.Duration(cfg.DraftTTLHours) * time.Hour,
		log:    log,
	}
}

// NewStoreWithClient wraps an existing client; used by tests.
func NewStoreWithClient(client *redis.Client, ttl time.Duration, log *logrus.Logger) *Store {
	return &Store{client: client, ttl: ttl, log: log}
}

// Ping verifies the Redis connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// SaveDraft stores the form state for a session, refreshing its TTL.
func (s *Store) SaveDraft(ctx context.Context, sessionID string, state models.FormState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(sessionID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	s.log.Debugf("Draft saved for session %s", sessionID)
	return nil
}

// LoadDraft fetches the form state for a session.
func (s *Store) LoadDraft(ctx context.Context, sessionID string) (models.FormState, error) {
	var state models.FormState
	payload, err := s.client.Get(ctx, draftKey(sessionID)).Bytes()
	if err == redis.Nil {
		return state, ErrDraftNotFound
	}
	if err != nil {
		return state, fmt.Errorf("failed to load draft: %w", err)
	}
	if err := json.Unmarshal(payload, &state); err != nil {
		return state, fmt.Errorf("failed to decode draft: %w", err)
	}
	return state, nil
}

// DeleteDraft removes a session's draft.
func (s *Store) DeleteDraft(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

func draftKey(sessionID string) string {
	return "prequal:draft:" + sessionID
}
