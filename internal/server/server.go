package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/movie-be/internal/auth"
	"github.com/hongminglow/movie-be/internal/config"
	"github.com/hongminglow/movie-be/internal/http/handlers"
	"github.com/hongminglow/movie-be/internal/http/respond"
	"github.com/hongminglow/movie-be/internal/middleware"
	"github.com/hongminglow/movie-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, logger *slog.Logger) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           NewHandler(cfg, store, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// NewHandler builds the routed handler chain without binding a listener.
func NewHandler(cfg config.Config, store storage.Store, logger *slog.Logger) http.Handler {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)

	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	handlers.NewHealthHandler(time.Now()).Register(r)
	handlers.NewAuthHandler(store, store, tokens).Register(r)
	handlers.NewRoleHandler(store).Register(r)
	handlers.NewUserHandler(store).Register(r, middleware.RequireAuth(tokens))
	handlers.NewMovieHandler(store).Register(r)
	handlers.NewGenreHandler(store).Register(r)

	return middleware.Logging(logger, middleware.CORS(cfg.CORSOrigins, r))
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
