package sqlite

import (
	"context"
	"fmt"

	"github.com/hongminglow/movie-be/internal/models"
)

func (s *Store) ListGenres(ctx context.Context) ([]models.Genre, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM genres ORDER BY id`)
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

func (s *Store) GetGenre(ctx context.Context, id int64) (models.Genre, error) {
	return scanGenre(s.db.QueryRowContext(ctx, `SELECT id, name FROM genres WHERE id = ?`, id))
}

func (s *Store) FindGenreByName(ctx context.Context, name string) (models.Genre, error) {
	return scanGenre(s.db.QueryRowContext(ctx, `SELECT id, name FROM genres WHERE name = ?`, name))
}

func (s *Store) CreateGenre(ctx context.Context, genre models.Genre) (models.Genre, error) {
	id, err := s.insert(ctx, `INSERT INTO genres (name) VALUES (?)`, genre.Name)
	if err != nil {
		return models.Genre{}, err
	}
	return models.Genre{ID: id, Name: genre.Name}, nil
}

func (s *Store) UpdateGenre(ctx context.Context, genre models.Genre) error {
	return s.execOne(ctx, `UPDATE genres SET name = ? WHERE id = ?`, genre.Name, genre.ID)
}

func (s *Store) DeleteGenre(ctx context.Context, id int64) error {
	return s.execOne(ctx, `DELETE FROM genres WHERE id = ?`, id)
}

func scanGenre(row scanner) (models.Genre, error) {
	var genre models.Genre
	if err := row.Scan(&genre.ID, &genre.Name); err != nil {
		return models.Genre{}, translate(err)
	}
	return genre, nil
}
