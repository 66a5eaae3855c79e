package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/movie-be/internal/http/respond"
	"github.com/hongminglow/movie-be/internal/logging"
	"github.com/hongminglow/movie-be/internal/storage"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// internalError logs err and answers with a generic 500.
func internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logging.FromContext(r.Context()).Error(op+" failed", "error", err)
	respond.Error(w, http.StatusInternalServerError, "internal server error")
}

// storeError maps storage sentinels onto 404/409 and anything else onto 500.
func storeError(w http.ResponseWriter, r *http.Request, op, resource string, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		logging.FromContext(r.Context()).Warn(resource+" not found", "op", op, "path", r.URL.Path)
		respond.Error(w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, storage.ErrAlreadyExists):
		respond.Error(w, http.StatusConflict, resource+" already exists")
	default:
		internalError(w, r, op, err)
	}
}
