package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/movie-be/internal/auth"
	"github.com/hongminglow/movie-be/internal/http/respond"
	"github.com/hongminglow/movie-be/internal/logging"
	"github.com/hongminglow/movie-be/internal/models"
	"github.com/hongminglow/movie-be/internal/models/dto"
	"github.com/hongminglow/movie-be/internal/storage"
)

// Shared by every credential failure so callers cannot tell which check failed.
const invalidCredentials = "invalid credentials"

// AuthHandler owns register/login endpoints.
type AuthHandler struct {
	users  storage.UserStore
	roles  storage.RoleStore
	tokens *auth.TokenManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(users storage.UserStore, roles storage.RoleStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, roles: roles, tokens: tokens}
}

// Register attaches auth routes to the router.
func (h *AuthHandler) Register(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)
	})
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	username := strings.TrimSpace(req.Username)
	roleName := strings.TrimSpace(req.Role)
	if username == "" || strings.TrimSpace(req.Password) == "" || roleName == "" {
		respond.Error(w, http.StatusBadRequest, "username, password, and role are required")
		return
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	if _, err := h.users.FindByUsername(ctx, username); err == nil {
		respond.Error(w, http.StatusConflict, "username already exists")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		internalError(w, r, "register: lookup user", err)
		return
	}

	role, err := h.roles.FindRoleByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusBadRequest, "invalid role")
			return
		}
		internalError(w, r, "register: lookup role", err)
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		internalError(w, r, "register: hash password", err)
		return
	}

	created, err := h.users.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: passwordHash,
		RoleID:       &role.ID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(w, http.StatusConflict, "username already exists")
			return
		}
		internalError(w, r, "register: create user", err)
		return
	}

	h.issue(w, r, created, role.Name, "user registered successfully")
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || strings.TrimSpace(req.Password) == "" {
		respond.Error(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.users.FindByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logging.FromContext(r.Context()).Info("login failed: unknown user", "username", username)
			respond.Error(w, http.StatusUnauthorized, invalidCredentials)
			return
		}
		internalError(w, r, "login: lookup user", err)
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		logging.FromContext(r.Context()).Info("login failed: bad password", "user_id", user.ID)
		respond.Error(w, http.StatusUnauthorized, invalidCredentials)
		return
	}

	roleName, err := h.roleName(r.Context(), user)
	if err != nil {
		internalError(w, r, "login: lookup role", err)
		return
	}
	h.issue(w, r, user, roleName, "login successful")
}

// roleName resolves the user's role, falling back to Guest when the
// reference is unset or dangling.
func (h *AuthHandler) roleName(ctx context.Context, user models.User) (string, error) {
	if user.RoleID == nil {
		return models.GuestRole, nil
	}
	role, err := h.roles.GetRole(ctx, *user.RoleID)
	if errors.Is(err, storage.ErrNotFound) {
		return models.GuestRole, nil
	}
	if err != nil {
		return "", err
	}
	return role.Name, nil
}

func (h *AuthHandler) issue(w http.ResponseWriter, r *http.Request, user models.User, roleName, message string) {
	token, err := h.tokens.Generate(user.ID, user.Username, roleName)
	if err != nil {
		internalError(w, r, "sign token", err)
		return
	}
	respond.JSON(w, http.StatusOK, message, dto.LoginResponse{
		Token: token,
		User:  dto.UserSummary{ID: user.ID, Username: user.Username, Role: roleName},
	})
}
