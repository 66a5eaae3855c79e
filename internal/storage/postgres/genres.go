package postgres

import (
	"context"
	"fmt"

	"github.com/hongminglow/movie-be/internal/models"
	"github.com/jackc/pgx/v5"
)

// ListGenres returns every genre ordered by id.
func (s *Store) ListGenres(ctx context.Context) ([]models.Genre, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()

	genres := make([]models.Genre, 0)
	for rows.Next() {
		genre, err := scanGenre(rows)
		if err != nil {
			return nil, fmt.Errorf("list genres: %w", err)
		}
		genres = append(genres, genre)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

// GetGenre fetches a genre by primary key.
func (s *Store) GetGenre(ctx context.Context, id int64) (models.Genre, error) {
	return scanGenre(s.pool.QueryRow(ctx, `SELECT id, name FROM genres WHERE id = $1`, id))
}

// FindGenreByName fetches a genre by its exact name.
func (s *Store) FindGenreByName(ctx context.Context, name string) (models.Genre, error) {
	return scanGenre(s.pool.QueryRow(ctx, `SELECT id, name FROM genres WHERE name = $1`, name))
}

// CreateGenre inserts a new genre. A duplicate name yields storage.ErrAlreadyExists.
func (s *Store) CreateGenre(ctx context.Context, genre models.Genre) (models.Genre, error) {
	return scanGenre(s.pool.QueryRow(ctx, `INSERT INTO genres (name) VALUES ($1) RETURNING id, name`, genre.Name))
}

// UpdateGenre renames a genre.
func (s *Store) UpdateGenre(ctx context.Context, genre models.Genre) error {
	return s.execOne(ctx, `UPDATE genres SET name = $2 WHERE id = $1`, genre.ID, genre.Name)
}

// DeleteGenre removes a genre. Movies referencing it are left untouched.
func (s *Store) DeleteGenre(ctx context.Context, id int64) error {
	return s.execOne(ctx, `DELETE FROM genres WHERE id = $1`, id)
}

func scanGenre(row pgx.Row) (models.Genre, error) {
	var genre models.Genre
	if err := row.Scan(&genre.ID, &genre.Name); err != nil {
		return models.Genre{}, translate(err)
	}
	return genre, nil
}
