package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"bingo-quiz-bot/internal/domain"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionStore(client, ttl), mr
}

func sampleSession() *domain.Session {
	return domain.NewSession(domain.User{ID: 7, FirstName: "Alice"}, 42, domain.Catalog{
		Categories: []domain.Category{
			{
				Name:        "Warmup",
				Description: "Easy ones.",
				Questions: []domain.Question{
					{Prompt: "2+2?", Options: []string{"3", "4"}, CorrectIndex: 1, Points: 100, Duration: 30},
				},
			},
		},
	})
}

func TestSessionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, time.Minute)

	if err := store.Save(ctx, sampleSession()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !mr.Exists("bingo:session:7") {
		t.Fatalf("expected session key in redis")
	}

	loaded, err := store.Find(ctx, 7)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if loaded.User.FirstName != "Alice" || loaded.ChatID != 42 {
		t.Fatalf("loaded session mismatch: %+v", loaded)
	}
	q := loaded.Categories[0].Questions[0]
	if q.Status != domain.StatusCreated || q.Answer != domain.NoAnswer {
		t.Fatalf("question state lost in round trip: %+v", q)
	}
}

func TestSessionStoreLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, time.Minute)

	session := sampleSession()
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}

	session.Categories[0].Questions[0].Status = domain.StatusCorrect
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, _ := store.Find(ctx, 7)
	if loaded.Categories[0].Questions[0].Status != domain.StatusCorrect {
		t.Fatalf("expected the latest write to win")
	}
}

func TestSessionStoreMiss(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	if _, err := store.Find(context.Background(), 404); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session-not-found, got %v", err)
	}
}

func TestSessionStoreTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, time.Minute)

	if err := store.Save(ctx, sampleSession()); err != nil {
		t.Fatalf("save: %v", err)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := store.Find(ctx, 7); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected expired session to be gone, got %v", err)
	}
}
