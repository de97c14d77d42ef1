package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"bingo-quiz-bot/internal/domain"
	"github.com/redis/go-redis/v9"
)

// SessionStore persists session documents as JSON values keyed by user id.
// Writes overwrite unconditionally (last write wins); an optional TTL lets
// abandoned sessions expire.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Find(ctx context.Context, userID int64) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find session %d: %w", userID, err)
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session %d: %w", userID, err)
	}
	return &session, nil
}

func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session %d: %w", session.User.ID, err)
	}
	if err := s.client.Set(ctx, s.key(session.User.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session %d: %w", session.User.ID, err)
	}
	return nil
}

func (s *SessionStore) key(userID int64) string {
	return "bingo:session:" + strconv.FormatInt(userID, 10)
}
