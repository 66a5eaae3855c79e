package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/hongminglow/movie-be/internal/auth"
	"github.com/hongminglow/movie-be/internal/models"
	"github.com/hongminglow/movie-be/internal/models/dto"
	"github.com/hongminglow/movie-be/internal/storage/postgres"
)

// TestAuthIntegration exercises the register/login endpoints against a live Postgres.
func TestAuthIntegration(t *testing.T) {
	if os.Getenv("RUN_AUTH_INTEGRATION") != "true" {
		t.Skip("set RUN_AUTH_INTEGRATION=true to run this integration test")
	}

	loadDotEnv()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	store, err := postgres.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	defer store.Close()

	secret := mustGetEnv(t, "JWT_SECRET")
	issuer := mustGetEnv(t, "JWT_ISSUER")
	audience := mustGetEnv(t, "JWT_AUDIENCE")
	tokens := auth.NewTokenManager(secret, issuer, audience)

	r := chi.NewRouter()
	NewAuthHandler(store, store, tokens).Register(r)

	ts := httptest.NewServer(r)
	defer ts.Close()

	username := fmt.Sprintf("apitest_%d", time.Now().UnixNano())
	password := fmt.Sprintf("Pass!%d", time.Now().UnixNano())

	registered := postAuth(t, ts.URL+"/auth/register", dto.RegisterRequest{
		Username: username,
		Password: password,
		Role:     models.UserRole,
	})
	if registered.User.Username != username || registered.User.Role != models.UserRole {
		t.Fatalf("register mismatch: got %+v", registered.User)
	}

	loggedIn := postAuth(t, ts.URL+"/auth/login", dto.LoginRequest{Username: username, Password: password})
	if loggedIn.User.ID != registered.User.ID {
		t.Fatalf("login returned wrong user id: want %d got %d", registered.User.ID, loggedIn.User.ID)
	}
	if strings.TrimSpace(loggedIn.Token) == "" {
		t.Fatal("login response missing token")
	}
	claims, err := tokens.Parse(loggedIn.Token)
	if err != nil {
		t.Fatalf("parse login token: %v", err)
	}
	if claims.Username() != username {
		t.Fatalf("token subject = %q, want %q", claims.Username(), username)
	}

	if err := store.DeleteUser(ctx, registered.User.ID); err != nil {
		t.Fatalf("cleanup user: %v", err)
	}
	t.Logf("registered %s (id=%d) and logged in via /auth/login", username, registered.User.ID)
}

func postAuth(t *testing.T, url string, payload any) dto.LoginResponse {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("%s status = %d", url, resp.StatusCode)
	}

	var out struct {
		Data dto.LoginResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out.Data
}

func mustGetEnv(t *testing.T, key string) string {
	t.Helper()
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		t.Fatalf("%s is required", key)
	}
	return val
}

func loadDotEnv() {
	paths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
		"../../../../.env",
	}
	for _, path := range paths {
		_ = godotenv.Overload(path)
	}
}
