package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/movie-be/internal/models"
)

func TestGenreCreateDuplicate(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(t, http.MethodPost, "/genre", models.Genre{Name: "Horror"})
	require.Equal(t, http.StatusCreated, res.status)
	var horror models.Genre
	res.decode(t, &horror)
	assert.Equal(t, "Horror", horror.Name)
	assert.Equal(t, fmt.Sprintf("/genre/%d", horror.ID), res.header.Get("Location"))

	res = env.do(t, http.MethodPost, "/genre", models.Genre{Name: "Horror"})
	assert.Equal(t, http.StatusConflict, res.status)

	genres, err := env.store.ListGenres(t.Context())
	require.NoError(t, err)
	assert.Len(t, genres, 1)
}

func TestGenreCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	for _, body := range []any{"null", "", models.Genre{Name: "  "}} {
		res := env.do(t, http.MethodPost, "/genre", body)
		assert.Equal(t, http.StatusBadRequest, res.status, "body %v", body)
	}
}

func TestGenreCRUD(t *testing.T) {
	env := newTestEnv(t)
	res := env.do(t, http.MethodPost, "/genre", models.Genre{Name: "Comedy"})
	require.Equal(t, http.StatusCreated, res.status)
	var comedy models.Genre
	res.decode(t, &comedy)
	res = env.do(t, http.MethodPost, "/genre", models.Genre{Name: "Drama"})
	require.Equal(t, http.StatusCreated, res.status)

	path := fmt.Sprintf("/genre/%d", comedy.ID)

	res = env.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, res.status)
	var got models.Genre
	res.decode(t, &got)
	assert.Equal(t, comedy, got)

	res = env.do(t, http.MethodPut, path, models.Genre{ID: comedy.ID + 1, Name: "Satire"})
	assert.Equal(t, http.StatusBadRequest, res.status)

	res = env.do(t, http.MethodPut, path, models.Genre{ID: comedy.ID, Name: "Drama"})
	assert.Equal(t, http.StatusConflict, res.status)

	res = env.do(t, http.MethodPut, path, models.Genre{ID: comedy.ID, Name: "Satire"})
	assert.Equal(t, http.StatusNoContent, res.status)

	res = env.do(t, http.MethodGet, "/genre", nil)
	var genres []models.Genre
	res.decode(t, &genres)
	require.Len(t, genres, 2)
	assert.Equal(t, "Satire", genres[0].Name)

	res = env.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "genre deleted successfully", res.envelope.Message)

	res = env.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, res.status)
	res = env.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, res.status)
}
