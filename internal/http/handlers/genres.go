package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/movie-be/internal/http/respond"
	"github.com/hongminglow/movie-be/internal/models"
	"github.com/hongminglow/movie-be/internal/storage"
)

// GenreHandler exposes CRUD over catalog genres. Names are unique.
type GenreHandler struct {
	store storage.GenreStore
}

func NewGenreHandler(store storage.GenreStore) *GenreHandler {
	return &GenreHandler{store: store}
}

func (h *GenreHandler) Register(r chi.Router) {
	r.Route("/genre", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *GenreHandler) list(w http.ResponseWriter, r *http.Request) {
	genres, err := h.store.ListGenres(r.Context())
	if err != nil {
		internalError(w, r, "list genres", err)
		return
	}
	respond.JSON(w, http.StatusOK, "genres fetched", genres)
}

func (h *GenreHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	genre, err := h.store.GetGenre(r.Context(), id)
	if err != nil {
		storeError(w, r, "get genre", "genre", err)
		return
	}
	respond.JSON(w, http.StatusOK, "genre fetched", genre)
}

func (h *GenreHandler) create(w http.ResponseWriter, r *http.Request) {
	var genre *models.Genre
	if err := decodeJSON(w, r, &genre); err != nil || genre == nil {
		respond.Error(w, http.StatusBadRequest, "invalid genre data")
		return
	}
	genre.ID = 0
	genre.Name = strings.TrimSpace(genre.Name)
	if genre.Name == "" {
		respond.Error(w, http.StatusBadRequest, "genre name is required")
		return
	}

	// Fast path only; the unique index settles concurrent inserts.
	if _, err := h.store.FindGenreByName(r.Context(), genre.Name); err == nil {
		respond.Error(w, http.StatusConflict, "genre already exists")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		internalError(w, r, "create genre: lookup", err)
		return
	}

	created, err := h.store.CreateGenre(r.Context(), *genre)
	if err != nil {
		storeError(w, r, "create genre", "genre", err)
		return
	}
	respond.Created(w, fmt.Sprintf("/genre/%d", created.ID), "genre created", created)
}

func (h *GenreHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	var in *models.Genre
	if err := decodeJSON(w, r, &in); err != nil || in == nil {
		respond.Error(w, http.StatusBadRequest, "invalid genre data")
		return
	}
	if in.ID != id {
		respond.Error(w, http.StatusBadRequest, "id mismatch")
		return
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		respond.Error(w, http.StatusBadRequest, "genre name is required")
		return
	}

	genre, err := h.store.GetGenre(r.Context(), id)
	if err != nil {
		storeError(w, r, "update genre: lookup", "genre", err)
		return
	}
	genre.Name = name
	if err := h.store.UpdateGenre(r.Context(), genre); err != nil {
		storeError(w, r, "update genre", "genre", err)
		return
	}
	respond.NoContent(w)
}

func (h *GenreHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.store.DeleteGenre(r.Context(), id); err != nil {
		storeError(w, r, "delete genre", "genre", err)
		return
	}
	respond.JSON(w, http.StatusOK, "genre deleted successfully", nil)
}
