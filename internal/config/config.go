package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Supported values for DATABASE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port           string
	DatabaseDriver string
	DatabaseURL    string
	JWTSecret      string
	JWTIssuer      string
	JWTAudience    string
	CORSOrigins    []string
	LogLevel       string
	LogFormat      string
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Port:           fallback(os.Getenv("PORT"), "8080"),
		DatabaseDriver: strings.ToLower(fallback(os.Getenv("DATABASE_DRIVER"), DriverPostgres)),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:      fallback(os.Getenv("JWT_ISSUER"), "movie-backend"),
		JWTAudience:    fallback(os.Getenv("JWT_AUDIENCE"), "movie-frontend"),
		CORSOrigins:    parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		LogLevel:       fallback(os.Getenv("LOG_LEVEL"), "info"),
		LogFormat:      fallback(os.Getenv("LOG_FORMAT"), "json"),
	}

	switch cfg.DatabaseDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
