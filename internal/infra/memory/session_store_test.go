package memory

import (
	"context"
	"errors"
	"testing"

	"bingo-quiz-bot/internal/domain"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	session := domain.NewSession(domain.User{ID: 7, FirstName: "Alice"}, 42, DefaultCatalog())
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Find(ctx, 7)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if loaded.ChatID != 42 || loaded.User.FirstName != "Alice" {
		t.Fatalf("loaded session mismatch: %+v", loaded)
	}
	if len(loaded.Categories) != len(session.Categories) {
		t.Fatalf("expected %d categories, got %d", len(session.Categories), len(loaded.Categories))
	}
}

func TestSessionStoreReturnsIndependentCopies(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	session := domain.NewSession(domain.User{ID: 7}, 42, DefaultCatalog())
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}

	first, _ := store.Find(ctx, 7)
	first.Categories[0].Questions[0].Status = domain.StatusCorrect

	second, _ := store.Find(ctx, 7)
	if second.Categories[0].Questions[0].Status != domain.StatusCreated {
		t.Fatalf("mutation of a loaded session leaked into the store")
	}
}

func TestSessionStoreMiss(t *testing.T) {
	store := NewSessionStore()
	if _, err := store.Find(context.Background(), 404); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session-not-found, got %v", err)
	}
}

func TestStaticCatalogLoader(t *testing.T) {
	ctx := context.Background()
	loader := NewStaticCatalogLoader(map[string]domain.Catalog{
		DefaultCatalog().ID: DefaultCatalog(),
	})

	catalog, err := loader.LoadCatalog(ctx, "newyear-bingo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(catalog.Categories) == 0 {
		t.Fatalf("expected categories in the default catalog")
	}

	if _, err := loader.LoadCatalog(ctx, "nope"); !errors.Is(err, domain.ErrCatalogNotFound) {
		t.Fatalf("expected catalog-not-found, got %v", err)
	}
}
