package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"bingo-quiz-bot/internal/domain"
)

// SessionStore keeps serialized session documents in memory. Documents are
// marshalled on save and unmarshalled on find so every read returns an
// independent copy, matching the semantics of the Redis store.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64][]byte
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64][]byte)}
}

func (s *SessionStore) Find(_ context.Context, userID int64) (*domain.Session, error) {
	s.mu.RLock()
	raw, ok := s.sessions[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *SessionStore) Save(_ context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	s.mu.Lock()
	s.sessions[session.User.ID] = raw
	s.mu.Unlock()
	return nil
}
