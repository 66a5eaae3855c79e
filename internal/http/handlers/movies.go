package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/movie-be/internal/http/respond"
	"github.com/hongminglow/movie-be/internal/models"
	"github.com/hongminglow/movie-be/internal/storage"
)

// MovieHandler exposes CRUD over the movie catalog.
type MovieHandler struct {
	store storage.MovieStore
}

func NewMovieHandler(store storage.MovieStore) *MovieHandler {
	return &MovieHandler{store: store}
}

func (h *MovieHandler) Register(r chi.Router) {
	r.Route("/movie", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *MovieHandler) list(w http.ResponseWriter, r *http.Request) {
	movies, err := h.store.ListMovies(r.Context())
	if err != nil {
		internalError(w, r, "list movies", err)
		return
	}
	respond.JSON(w, http.StatusOK, "movies fetched", movies)
}

func (h *MovieHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	movie, err := h.store.GetMovie(r.Context(), id)
	if err != nil {
		storeError(w, r, "get movie", "movie", err)
		return
	}
	respond.JSON(w, http.StatusOK, "movie fetched", movie)
}

func (h *MovieHandler) create(w http.ResponseWriter, r *http.Request) {
	var movie *models.Movie
	if err := decodeJSON(w, r, &movie); err != nil || movie == nil {
		respond.Error(w, http.StatusBadRequest, "invalid movie data")
		return
	}
	movie.ID = 0
	created, err := h.store.CreateMovie(r.Context(), *movie)
	if err != nil {
		storeError(w, r, "create movie", "movie", err)
		return
	}
	respond.Created(w, fmt.Sprintf("/movie/%d", created.ID), "movie created", created)
}

func (h *MovieHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	var in *models.Movie
	if err := decodeJSON(w, r, &in); err != nil || in == nil {
		respond.Error(w, http.StatusBadRequest, "invalid movie data")
		return
	}
	if in.ID != id {
		respond.Error(w, http.StatusBadRequest, "id mismatch")
		return
	}

	movie, err := h.store.GetMovie(r.Context(), id)
	if err != nil {
		storeError(w, r, "update movie: lookup", "movie", err)
		return
	}
	movie.ApplyUpdate(*in)
	if err := h.store.UpdateMovie(r.Context(), movie); err != nil {
		storeError(w, r, "update movie", "movie", err)
		return
	}
	respond.NoContent(w)
}

func (h *MovieHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.store.DeleteMovie(r.Context(), id); err != nil {
		storeError(w, r, "delete movie", "movie", err)
		return
	}
	respond.NoContent(w)
}
