package out

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"planview/internal/modules/auth/domain"
	apperrors "planview/internal/platform/errors"
)

func newStore(t *testing.T) *SQLiteCredentialStore {
	t.Helper()
	store, err := NewSQLiteCredentialStore(filepath.Join(t.TempDir(), "state", "planview.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store.(*SQLiteCredentialStore)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newStore(t)
	session := domain.Session{
		Token: "tok-123",
		Identity: domain.Identity{
			FirstName: "Jean",
			LastName:  "Dupont",
			Email:     "jean@example.edu",
		},
	}

	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != session {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSaveOverwritesPreviousSession(t *testing.T) {
	store := newStore(t)
	first := domain.Session{Token: "old", Identity: domain.Identity{Email: "a@example.edu", FirstName: "A"}}
	second := domain.Session{Token: "new", Identity: domain.Identity{Email: "b@example.edu", FirstName: "B"}}

	if err := store.Save(context.Background(), first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := store.Save(context.Background(), second); err != nil {
		t.Fatalf("save second: %v", err)
	}
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Token != "new" {
		t.Fatalf("expected latest session, got %+v", got)
	}
}

func TestLoadWithoutSession(t *testing.T) {
	store := newStore(t)
	_, err := store.Load(context.Background())
	if !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := newStore(t)
	if err := store.Save(context.Background(), domain.Session{Token: "tok", Identity: domain.Identity{Email: "e@example.edu", FirstName: "E"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn after clear, got %v", err)
	}
}
