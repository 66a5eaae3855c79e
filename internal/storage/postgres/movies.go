package postgres

import (
	"context"
	"fmt"

	"github.com/hongminglow/movie-be/internal/models"
	"github.com/jackc/pgx/v5"
)

const movieColumns = `id, title, description, poster_url, genre_id`

// ListMovies returns every movie ordered by id.
func (s *Store) ListMovies(ctx context.Context) ([]models.Movie, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+movieColumns+` FROM movies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("list movies: %w", err)
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// GetMovie fetches a movie by primary key.
func (s *Store) GetMovie(ctx context.Context, id int64) (models.Movie, error) {
	return scanMovie(s.pool.QueryRow(ctx, `SELECT `+movieColumns+` FROM movies WHERE id = $1`, id))
}

// CreateMovie inserts a new movie.
func (s *Store) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	const query = `
		INSERT INTO movies (title, description, poster_url, genre_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + movieColumns
	return scanMovie(s.pool.QueryRow(ctx, query, movie.Title, movie.Description, movie.PosterURL, movie.GenreID))
}

// UpdateMovie overwrites the catalog columns of an existing movie.
func (s *Store) UpdateMovie(ctx context.Context, movie models.Movie) error {
	const query = `
		UPDATE movies
		SET title = $2, description = $3, poster_url = $4, genre_id = $5
		WHERE id = $1`
	return s.execOne(ctx, query, movie.ID, movie.Title, movie.Description, movie.PosterURL, movie.GenreID)
}

// DeleteMovie removes a movie row.
func (s *Store) DeleteMovie(ctx context.Context, id int64) error {
	return s.execOne(ctx, `DELETE FROM movies WHERE id = $1`, id)
}

func scanMovie(row pgx.Row) (models.Movie, error) {
	var movie models.Movie
	if err := row.Scan(&movie.ID, &movie.Title, &movie.Description, &movie.PosterURL, &movie.GenreID); err != nil {
		return models.Movie{}, translate(err)
	}
	return movie, nil
}
