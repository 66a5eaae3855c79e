package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/movie-be/internal/auth"
	"github.com/hongminglow/movie-be/internal/http/respond"
	"github.com/hongminglow/movie-be/internal/middleware"
	"github.com/hongminglow/movie-be/internal/models/dto"
	"github.com/hongminglow/movie-be/internal/storage"
)

// UserHandler exposes CRUD over user records plus an authenticated probe.
type UserHandler struct {
	store storage.UserStore
}

func NewUserHandler(store storage.UserStore) *UserHandler {
	return &UserHandler{store: store}
}

// Register attaches /user routes. authn guards /user/hello.
func (h *UserHandler) Register(r chi.Router, authn func(http.Handler) http.Handler) {
	r.Route("/user", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.With(authn).Get("/hello", h.hello)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *UserHandler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		internalError(w, r, "list users", err)
		return
	}
	respond.JSON(w, http.StatusOK, "users fetched", users)
}

func (h *UserHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		storeError(w, r, "get user", "user", err)
		return
	}
	respond.JSON(w, http.StatusOK, "user fetched", user)
}

func (h *UserHandler) create(w http.ResponseWriter, r *http.Request) {
	var req *dto.UserRequest
	if err := decodeJSON(w, r, &req); err != nil || req == nil {
		respond.Error(w, http.StatusBadRequest, "invalid user data")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		respond.Error(w, http.StatusBadRequest, "username is required")
		return
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	if _, err := h.store.FindByUsername(ctx, req.Username); err == nil {
		respond.Error(w, http.StatusConflict, "user already exists")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		internalError(w, r, "create user: lookup", err)
		return
	}

	hash, err := hashIfSet(req.Password)
	if err != nil {
		internalError(w, r, "create user: hash password", err)
		return
	}
	created, err := h.store.CreateUser(ctx, req.User(hash))
	if err != nil {
		storeError(w, r, "create user", "user", err)
		return
	}
	respond.Created(w, fmt.Sprintf("/user/%d", created.ID), "user created", created)
}

func (h *UserHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	var req *dto.UserRequest
	if err := decodeJSON(w, r, &req); err != nil || req == nil {
		respond.Error(w, http.StatusBadRequest, "invalid user data")
		return
	}
	if req.ID != id {
		respond.Error(w, http.StatusBadRequest, "id mismatch")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		respond.Error(w, http.StatusBadRequest, "username is required")
		return
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	user, err := h.store.GetUser(ctx, id)
	if err != nil {
		storeError(w, r, "update user: lookup", "user", err)
		return
	}
	hash, err := hashIfSet(req.Password)
	if err != nil {
		internalError(w, r, "update user: hash password", err)
		return
	}
	user.ApplyUpdate(req.User(hash))
	if err := h.store.UpdateUser(ctx, user); err != nil {
		storeError(w, r, "update user", "user", err)
		return
	}
	respond.NoContent(w)
}

func (h *UserHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		storeError(w, r, "delete user", "user", err)
		return
	}
	respond.NoContent(w)
}

func (h *UserHandler) hello(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{}
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		data["username"] = claims.Username()
		data["role"] = claims.Role
	}
	respond.JSON(w, http.StatusOK, "Hello from a protected backend route!", data)
}

func hashIfSet(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	return auth.HashPassword(password)
}
