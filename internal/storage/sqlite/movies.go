package sqlite

import (
	"context"
	"fmt"

	"github.com/hongminglow/movie-be/internal/models"
)

const movieColumns = `id, title, description, poster_url, genre_id`

func (s *Store) ListMovies(ctx context.Context) ([]models.Movie, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+movieColumns+` FROM movies ORDER BY id`)
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

func (s *Store) GetMovie(ctx context.Context, id int64) (models.Movie, error) {
	return scanMovie(s.db.QueryRowContext(ctx, `SELECT `+movieColumns+` FROM movies WHERE id = ?`, id))
}

func (s *Store) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	id, err := s.insert(ctx,
		`INSERT INTO movies (title, description, poster_url, genre_id) VALUES (?, ?, ?, ?)`,
		movie.Title, movie.Description, movie.PosterURL, movie.GenreID)
	if err != nil {
		return models.Movie{}, err
	}
	movie.ID = id
	return movie, nil
}

func (s *Store) UpdateMovie(ctx context.Context, movie models.Movie) error {
	return s.execOne(ctx,
		`UPDATE movies SET title = ?, description = ?, poster_url = ?, genre_id = ? WHERE id = ?`,
		movie.Title, movie.Description, movie.PosterURL, movie.GenreID, movie.ID)
}

func (s *Store) DeleteMovie(ctx context.Context, id int64) error {
	return s.execOne(ctx, `DELETE FROM movies WHERE id = ?`, id)
}

func scanMovie(row scanner) (models.Movie, error) {
	var movie models.Movie
	if err := row.Scan(&movie.ID, &movie.Title, &movie.Description, &movie.PosterURL, &movie.GenreID); err != nil {
		return models.Movie{}, translate(err)
	}
	return movie, nil
}
