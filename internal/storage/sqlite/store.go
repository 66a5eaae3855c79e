// Package sqlite is a database/sql backed entity store for local development
// and tests. It mirrors the schema and semantics of the postgres store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hongminglow/movie-be/internal/storage"
	"github.com/mattn/go-sqlite3"
)

var _ storage.Store = (*Store)(nil)

// Store provides SQLite-backed persistence for users, roles, movies and genres.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at dsn and runs migrations. Use
// "file:<name>?mode=memory&cache=shared" for a throwaway in-memory database.
func New(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY under load.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`PRAGMA busy_timeout = 5000;`,
		`CREATE TABLE IF NOT EXISTS roles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS roles_name_unique_idx ON roles (name);`,
		`INSERT OR IGNORE INTO roles (name) VALUES ('Admin'), ('User');`,
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			password_hash TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			phone_number TEXT NOT NULL DEFAULT '',
			role_id INTEGER,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_username_unique_idx ON users (username);`,
		`CREATE TABLE IF NOT EXISTS genres (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS genres_name_unique_idx ON genres (name);`,
		`CREATE TABLE IF NOT EXISTS movies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			poster_url TEXT NOT NULL DEFAULT '',
			genre_id INTEGER
		);`,
		`CREATE INDEX IF NOT EXISTS movies_genre_id_idx ON movies (genre_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return storage.ErrAlreadyExists
	}
	return err
}

func (s *Store) execOne(ctx context.Context, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// insert runs an INSERT and returns the generated row id.
func (s *Store) insert(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translate(err)
	}
	return res.LastInsertId()
}

type scanner interface {
	Scan(dest ...any) error
}
