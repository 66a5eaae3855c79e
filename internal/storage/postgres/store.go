package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hongminglow/movie-be/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

const uniqueViolation = "23505"

// Store provides Postgres-backed persistence for users, roles, movies and genres.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a new Store and runs migrations.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// role_id and genre_id are soft references; no foreign keys on purpose.
func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS roles (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS roles_name_unique_idx ON roles (name);`,
		`INSERT INTO roles (name) VALUES ('Admin'), ('User') ON CONFLICT (name) DO NOTHING;`,
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			password_hash TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			phone_number TEXT NOT NULL DEFAULT '',
			role_id BIGINT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_username_unique_idx ON users (username);`,
		`CREATE TABLE IF NOT EXISTS genres (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS genres_name_unique_idx ON genres (name);`,
		`CREATE TABLE IF NOT EXISTS movies (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			poster_url TEXT NOT NULL DEFAULT '',
			genre_id BIGINT
		);`,
		`CREATE INDEX IF NOT EXISTS movies_genre_id_idx ON movies (genre_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// translate maps driver errors onto the storage sentinels.
func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return storage.ErrAlreadyExists
	}
	return err
}

// execOne runs a single-row mutation and reports ErrNotFound when nothing matched.
func (s *Store) execOne(ctx context.Context, query string, args ...any) error {
	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
