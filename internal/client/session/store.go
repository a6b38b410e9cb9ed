package session

import (
	"context"
	"database/sql"
	"time"

	"catalog/internal/errors"

	_ "modernc.org/sqlite"
)

// Store is the durable key/value backing of a Manager.
type Store interface {
	// Load returns (nil, zero, nil) when the key is absent.
	Load(ctx context.Context, key string) ([]byte, time.Time, error)
	Save(ctx context.Context, key string, value []byte, expiresAt time.Time) error
	Delete(ctx context.Context, key string) error
}

const createSessionTable = `
CREATE TABLE IF NOT EXISTS session (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  expires_at INTEGER NOT NULL
);`

// SQLiteStore keeps session entries in a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the database file at path.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open session db %s", path)
	}

	store, err := NewSQLiteStore(ctx, db)
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return store, nil
}

// NewSQLiteStore wraps an open database and ensures the session table exists.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if _, err := db.ExecContext(ctx, createSessionTable); err != nil {
		return nil, errors.Wrap(err, "create session table")
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, time.Time, error) {
	var (
		value     []byte
		expiresAt int64
	)
	err := s.db.QueryRowContext(ctx, `SELECT value, expires_at FROM session WHERE key = ?`, key).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, errors.Wrapf(err, "load session[%s]", key)
	}

	return value, time.Unix(expiresAt, 0), nil
}

func (s *SQLiteStore) Save(ctx context.Context, key string, value []byte, expiresAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
	`, key, value, expiresAt.Unix())
	if err != nil {
		return errors.Wrapf(err, "save session[%s]", key)
	}

	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, key); err != nil {
		return errors.Wrapf(err, "delete session[%s]", key)
	}

	return nil
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
