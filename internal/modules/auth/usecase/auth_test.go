package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"planview/internal/modules/auth/domain"
	"planview/internal/modules/auth/dto"
	"planview/internal/modules/auth/service"
	apperrors "planview/internal/platform/errors"
)

type fakeAuthenticator struct {
	session domain.Session
	err     error
}

func (f *fakeAuthenticator) Authenticate(context.Context, string, string) (domain.Session, error) {
	return f.session, f.err
}

type memoryStore struct {
	session domain.Session
	saved   bool
}

func (m *memoryStore) Save(_ context.Context, session domain.Session) error {
	m.session = session
	m.saved = true
	return nil
}

func (m *memoryStore) Load(context.Context) (domain.Session, error) {
	if !m.session.Authenticated() {
		return domain.Session{}, apperrors.ErrNotLoggedIn
	}
	return m.session, nil
}

func (m *memoryStore) Clear(context.Context) error {
	m.session = domain.Session{}
	return nil
}

func validSession() domain.Session {
	return domain.Session{
		Token: "tok-123",
		Identity: domain.Identity{
			FirstName: "Jean",
			LastName:  "Dupont",
			Email:     "jean@example.edu",
		},
	}
}

func newInteractor(authenticator *fakeAuthenticator, store *memoryStore) *Interactor {
	svc := service.NewAuthService(authenticator, zap.NewNop())
	return &Interactor{svc: svc, store: store}
}

func TestLoginPersistsSession(t *testing.T) {
	store := &memoryStore{}
	interactor := newInteractor(&fakeAuthenticator{session: validSession()}, store)

	out, err := interactor.Login(context.Background(), dto.LoginInput{Email: "jean@example.edu", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.Token != "tok-123" || out.FirstName != "Jean" {
		t.Fatalf("unexpected output %+v", out)
	}
	if !store.saved {
		t.Fatal("expected session to be persisted")
	}
}

func TestLoginValidatesFormBeforeNetwork(t *testing.T) {
	cases := []dto.LoginInput{
		{Email: "", Password: "secret"},
		{Email: "jean@example.edu", Password: ""},
		{Email: "not-an-email", Password: "secret"},
	}
	for _, input := range cases {
		store := &memoryStore{}
		interactor := newInteractor(&fakeAuthenticator{err: errors.New("should not be called")}, store)

		_, err := interactor.Login(context.Background(), input)
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", input, err)
		}
		if store.saved {
			t.Fatalf("input %+v: session persisted despite invalid form", input)
		}
	}
}

func TestLoginFailureLeavesStoreUntouched(t *testing.T) {
	store := &memoryStore{session: validSession()}
	interactor := newInteractor(&fakeAuthenticator{err: apperrors.ErrInvalidCredentials}, store)

	_, err := interactor.Login(context.Background(), dto.LoginInput{Email: "jean@example.edu", Password: "wrong"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := interactor.Current(context.Background()); err != nil {
		t.Fatalf("previous session lost: %v", err)
	}
}

func TestLoginRejectsIncompleteServerSession(t *testing.T) {
	incomplete := domain.Session{Token: "tok-123"}
	interactor := newInteractor(&fakeAuthenticator{session: incomplete}, &memoryStore{})

	_, err := interactor.Login(context.Background(), dto.LoginInput{Email: "jean@example.edu", Password: "secret"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutThenCurrentReportsNotLoggedIn(t *testing.T) {
	store := &memoryStore{session: validSession()}
	interactor := newInteractor(&fakeAuthenticator{}, store)

	if err := interactor.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	_, err := interactor.Current(context.Background())
	if !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}
