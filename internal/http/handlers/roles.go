package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/movie-be/internal/http/respond"
	"github.com/hongminglow/movie-be/internal/models"
	"github.com/hongminglow/movie-be/internal/storage"
)

// RoleHandler lists and creates permission tiers referenced at registration.
type RoleHandler struct {
	store storage.RoleStore
}

func NewRoleHandler(store storage.RoleStore) *RoleHandler {
	return &RoleHandler{store: store}
}

func (h *RoleHandler) Register(r chi.Router) {
	r.Route("/role", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
	})
}

func (h *RoleHandler) list(w http.ResponseWriter, r *http.Request) {
	roles, err := h.store.ListRoles(r.Context())
	if err != nil {
		internalError(w, r, "list roles", err)
		return
	}
	respond.JSON(w, http.StatusOK, "roles fetched", roles)
}

func (h *RoleHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	role, err := h.store.GetRole(r.Context(), id)
	if err != nil {
		storeError(w, r, "get role", "role", err)
		return
	}
	respond.JSON(w, http.StatusOK, "role fetched", role)
}

func (h *RoleHandler) create(w http.ResponseWriter, r *http.Request) {
	var role *models.Role
	if err := decodeJSON(w, r, &role); err != nil || role == nil {
		respond.Error(w, http.StatusBadRequest, "invalid role data")
		return
	}
	name := strings.TrimSpace(role.Name)
	if name == "" {
		respond.Error(w, http.StatusBadRequest, "role name is required")
		return
	}
	created, err := h.store.CreateRole(r.Context(), models.Role{Name: name})
	if err != nil {
		storeError(w, r, "create role", "role", err)
		return
	}
	respond.Created(w, fmt.Sprintf("/role/%d", created.ID), "role created", created)
}
