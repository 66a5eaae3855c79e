package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/movie-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures user persistence operations needed by handlers.
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, id int64) error
}

// RoleStore captures role lookups used by auth and the role endpoints.
type RoleStore interface {
	ListRoles(ctx context.Context) ([]models.Role, error)
	GetRole(ctx context.Context, id int64) (models.Role, error)
	FindRoleByName(ctx context.Context, name string) (models.Role, error)
	CreateRole(ctx context.Context, role models.Role) (models.Role, error)
}

// MovieStore captures movie persistence operations.
type MovieStore interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id int64) (models.Movie, error)
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	UpdateMovie(ctx context.Context, movie models.Movie) error
	DeleteMovie(ctx context.Context, id int64) error
}

// GenreStore captures genre persistence operations.
type GenreStore interface {
	ListGenres(ctx context.Context) ([]models.Genre, error)
	GetGenre(ctx context.Context, id int64) (models.Genre, error)
	FindGenreByName(ctx context.Context, name string) (models.Genre, error)
	CreateGenre(ctx context.Context, genre models.Genre) (models.Genre, error)
	UpdateGenre(ctx context.Context, genre models.Genre) error
	DeleteGenre(ctx context.Context, id int64) error
}

// Store is the full entity store implemented by each backend.
type Store interface {
	UserStore
	RoleStore
	MovieStore
	GenreStore
	Close()
}
