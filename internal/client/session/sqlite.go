package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/sispat/patrimonio-cli/internal/client/migrations"
	"github.com/sispat/patrimonio-cli/internal/client/models"
	"github.com/sispat/patrimonio-cli/internal/dbx"
)

// SQLiteStore keeps the session keys in a local sqlite file so that the
// logged-in identity and theme survive restarts.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the session database at dsn and brings the
// schema up to date.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}
	// Single connection: sqlite serializes writers anyway, and in-memory
	// databases must not be split across pool connections.
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migrating session db: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	return s.get(ctx, s.db, key)
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	return s.set(ctx, s.db, key, value)
}

func (s *SQLiteStore) Session(ctx context.Context) (models.Session, error) {
	var out models.Session
	var err error
	if out.User, err = s.Get(ctx, KeyUser); err != nil {
		return models.Session{}, err
	}
	if out.UserType, err = s.Get(ctx, KeyUserType); err != nil {
		return models.Session{}, err
	}
	if out.FirstName, err = s.Get(ctx, KeyFirstName); err != nil {
		return models.Session{}, err
	}
	return out, nil
}

func (s *SQLiteStore) SaveIdentity(ctx context.Context, sess models.Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, KeyUser, sess.User); err != nil {
			return err
		}
		if err := s.set(ctx, tx, KeyUserType, sess.UserType); err != nil {
			return err
		}
		return s.set(ctx, tx, KeyFirstName, sess.FirstName)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
