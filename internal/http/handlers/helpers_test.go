package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/movie-be/internal/auth"
	"github.com/hongminglow/movie-be/internal/middleware"
	"github.com/hongminglow/movie-be/internal/storage/sqlite"
	"github.com/hongminglow/movie-be/internal/testutil"
)

type testEnv struct {
	server *httptest.Server
	store  *sqlite.Store
	tokens *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := testutil.OpenMemoryStore(t)
	tokens := auth.NewTokenManager("test-secret", "movie-backend", "movie-frontend")

	r := chi.NewRouter()
	NewAuthHandler(store, store, tokens).Register(r)
	NewRoleHandler(store).Register(r)
	NewUserHandler(store).Register(r, middleware.RequireAuth(tokens))
	NewMovieHandler(store).Register(r)
	NewGenreHandler(store).Register(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return &testEnv{server: ts, store: store, tokens: tokens}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type result struct {
	status   int
	header   http.Header
	envelope envelope
}

// decode unmarshals the envelope data into dst.
func (r result) decode(t *testing.T, dst any) {
	t.Helper()
	require.NotEmpty(t, r.envelope.Data, "response has no data")
	require.NoError(t, json.Unmarshal(r.envelope.Data, dst))
}

// do sends body as-is when it is a string, otherwise JSON-encodes it.
func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) result {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := result{status: resp.StatusCode, header: resp.Header}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(bytes.TrimSpace(raw)) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out.envelope), "body: %s", raw)
	}
	return out
}
