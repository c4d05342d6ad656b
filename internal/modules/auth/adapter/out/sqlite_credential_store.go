package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"planview/internal/modules/auth/domain"
	authout "planview/internal/modules/auth/port/out"
	apperrors "planview/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const sessionKey = "session"

// SQLiteCredentialStore persists the session in a small key-value table so
// the token and identity survive restarts.
type SQLiteCredentialStore struct {
	db *sql.DB
}

func NewSQLiteCredentialStore(dbPath string) (authout.CredentialStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteCredentialStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteCredentialStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS credentials (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create credentials table: %w", err)
	}
	return nil
}

func (s *SQLiteCredentialStore) Save(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	const stmt = `
INSERT INTO credentials (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value;
`
	if _, err := s.db.ExecContext(ctx, stmt, sessionKey, string(payload)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SQLiteCredentialStore) Load(ctx context.Context) (domain.Session, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, sessionKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, apperrors.ErrNotLoggedIn
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	var session domain.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return domain.Session{}, fmt.Errorf("decode session: %w", err)
	}
	if !session.Authenticated() {
		return domain.Session{}, apperrors.ErrNotLoggedIn
	}
	return session, nil
}

func (s *SQLiteCredentialStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
