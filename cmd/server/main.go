package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hongminglow/movie-be/internal/config"
	"github.com/hongminglow/movie-be/internal/logging"
	"github.com/hongminglow/movie-be/internal/server"
	"github.com/hongminglow/movie-be/internal/storage"
	"github.com/hongminglow/movie-be/internal/storage/postgres"
	"github.com/hongminglow/movie-be/internal/storage/sqlite"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	if envErr != nil {
		logger.Info("no .env file found; relying on existing environment")
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("init database", "driver", cfg.DatabaseDriver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	srv := server.New(cfg, store, logger)

	go func() {
		logger.Info("movie backend listening", "addr", cfg.HTTPAddress(), "driver", cfg.DatabaseDriver)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("graceful shutdown error", "error", err)
	}
}

func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	if cfg.DatabaseDriver == config.DriverSQLite {
		return sqlite.New(ctx, cfg.DatabaseURL)
	}
	return postgres.New(ctx, cfg.DatabaseURL)
}
