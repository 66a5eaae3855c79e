package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hongminglow/movie-be/internal/storage/sqlite"
)

var dbSeq atomic.Int64

// OpenMemoryStore opens a fresh in-memory SQLite store for the calling test.
// The store is closed via t.Cleanup.
func OpenMemoryStore(t *testing.T) *sqlite.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))
	store, err := sqlite.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(store.Close)
	return store
}
