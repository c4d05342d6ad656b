package out

import (
	"context"

	"planview/internal/modules/auth/domain"
)

type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (domain.Session, error)
}

// CredentialStore persists the session across runs. Load returns
// ErrNotLoggedIn when nothing usable is stored.
type CredentialStore interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}
