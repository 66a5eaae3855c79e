package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/hongminglow/movie-be/internal/models"
	"github.com/hongminglow/movie-be/internal/storage"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	if os.Getenv("RUN_POSTGRES_INTEGRATION") != "true" {
		t.Skip("set RUN_POSTGRES_INTEGRATION=true to run postgres store tests")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("movie"),
		tcpostgres.WithUsername("movie"),
		tcpostgres.WithPassword("movie"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := New(ctx, connString)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func TestStoreIntegration(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	t.Run("seeded roles", func(t *testing.T) {
		admin, err := store.FindRoleByName(ctx, models.AdminRole)
		require.NoError(t, err)
		got, err := store.GetRole(ctx, admin.ID)
		require.NoError(t, err)
		assert.Equal(t, admin, got)

		_, err = store.CreateRole(ctx, models.Role{Name: models.AdminRole})
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	})

	t.Run("users", func(t *testing.T) {
		created, err := store.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "hash", Email: "a@example.com"})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Nil(t, created.RoleID)

		_, err = store.CreateUser(ctx, models.User{Username: "alice"})
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)

		created.Email = "alice@example.com"
		require.NoError(t, store.UpdateUser(ctx, created))
		got, err := store.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", got.Email)
		assert.False(t, got.UpdatedAt.Before(created.UpdatedAt))

		require.NoError(t, store.DeleteUser(ctx, created.ID))
		_, err = store.GetUser(ctx, created.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.ErrorIs(t, store.DeleteUser(ctx, created.ID), storage.ErrNotFound)
	})

	t.Run("genres and movies", func(t *testing.T) {
		genre, err := store.CreateGenre(ctx, models.Genre{Name: "Horror"})
		require.NoError(t, err)
		_, err = store.CreateGenre(ctx, models.Genre{Name: "Horror"})
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)

		movie, err := store.CreateMovie(ctx, models.Movie{Title: "Alien", GenreID: &genre.ID})
		require.NoError(t, err)
		got, err := store.GetMovie(ctx, movie.ID)
		require.NoError(t, err)
		assert.Equal(t, movie, got)

		movies, err := store.ListMovies(ctx)
		require.NoError(t, err)
		assert.Len(t, movies, 1)

		assert.ErrorIs(t, store.UpdateMovie(ctx, models.Movie{ID: 999}), storage.ErrNotFound)
		require.NoError(t, store.DeleteGenre(ctx, genre.ID))
		_, err = store.GetMovie(ctx, movie.ID)
		assert.NoError(t, err)
	})
}
