package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/movie-be/internal/models"
)

func createMovie(t *testing.T, env *testEnv, in models.Movie) models.Movie {
	t.Helper()
	res := env.do(t, http.MethodPost, "/movie", in)
	require.Equal(t, http.StatusCreated, res.status, res.envelope.Message)
	var out models.Movie
	res.decode(t, &out)
	assert.Equal(t, fmt.Sprintf("/movie/%d", out.ID), res.header.Get("Location"))
	return out
}

func TestMovieCreateThenGet(t *testing.T) {
	env := newTestEnv(t)
	genreID := int64(3)
	in := models.Movie{Title: "Alien", Description: "In space no one can hear you scream", PosterURL: "https://img.example/alien.jpg", GenreID: &genreID}

	created := createMovie(t, env, in)
	require.NotZero(t, created.ID)

	res := env.do(t, http.MethodGet, fmt.Sprintf("/movie/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, res.status)
	var got models.Movie
	res.decode(t, &got)

	want := in
	want.ID = created.ID
	assert.Equal(t, want, got)
}

func TestMovieCreateRejectsMissingBody(t *testing.T) {
	env := newTestEnv(t)
	for _, body := range []string{"null", "", "{broken"} {
		res := env.do(t, http.MethodPost, "/movie", body)
		assert.Equal(t, http.StatusBadRequest, res.status, "body %q", body)
	}
	movies, err := env.store.ListMovies(t.Context())
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestMovieList(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(t, http.MethodGet, "/movie", nil)
	require.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `[]`, string(res.envelope.Data))

	createMovie(t, env, models.Movie{Title: "One"})
	createMovie(t, env, models.Movie{Title: "Two"})

	res = env.do(t, http.MethodGet, "/movie", nil)
	var movies []models.Movie
	res.decode(t, &movies)
	require.Len(t, movies, 2)
	assert.Equal(t, "One", movies[0].Title)
	assert.Equal(t, "Two", movies[1].Title)
}

func TestMovieUpdate(t *testing.T) {
	env := newTestEnv(t)
	created := createMovie(t, env, models.Movie{Title: "Draft"})
	path := fmt.Sprintf("/movie/%d", created.ID)

	t.Run("id mismatch leaves row untouched", func(t *testing.T) {
		res := env.do(t, http.MethodPut, path, models.Movie{ID: created.ID + 1, Title: "Hijacked"})
		assert.Equal(t, http.StatusBadRequest, res.status)

		got, err := env.store.GetMovie(t.Context(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Draft", got.Title)
	})

	t.Run("missing row", func(t *testing.T) {
		res := env.do(t, http.MethodPut, "/movie/999", models.Movie{ID: 999, Title: "Ghost"})
		assert.Equal(t, http.StatusNotFound, res.status)
	})

	t.Run("null body", func(t *testing.T) {
		res := env.do(t, http.MethodPut, path, "null")
		assert.Equal(t, http.StatusBadRequest, res.status)
	})

	t.Run("overwrites allow-listed fields", func(t *testing.T) {
		genreID := int64(9)
		res := env.do(t, http.MethodPut, path, models.Movie{ID: created.ID, Title: "Final", Description: "Cut", PosterURL: "p.jpg", GenreID: &genreID})
		require.Equal(t, http.StatusNoContent, res.status)

		got, err := env.store.GetMovie(t.Context(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.Movie{ID: created.ID, Title: "Final", Description: "Cut", PosterURL: "p.jpg", GenreID: &genreID}, got)
	})
}

func TestMovieDelete(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(t, http.MethodDelete, "/movie/999", nil)
	assert.Equal(t, http.StatusNotFound, res.status)

	created := createMovie(t, env, models.Movie{Title: "Doomed"})
	path := fmt.Sprintf("/movie/%d", created.ID)

	res = env.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, res.status)

	res = env.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, res.status)
}

func TestMovieBadPathID(t *testing.T) {
	env := newTestEnv(t)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		res := env.do(t, method, "/movie/abc", `{}`)
		assert.Equal(t, http.StatusBadRequest, res.status, method)
	}
}

func TestStoreFailureIsInternal(t *testing.T) {
	env := newTestEnv(t)
	env.store.Close()

	res := env.do(t, http.MethodGet, "/movie", nil)
	assert.Equal(t, http.StatusInternalServerError, res.status)
	assert.Equal(t, "internal server error", res.envelope.Message)

	res = env.do(t, http.MethodGet, "/genre/1", nil)
	assert.Equal(t, http.StatusInternalServerError, res.status)
}
