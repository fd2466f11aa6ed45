package testutil

import (
	"testing"

	"github.com/nhle/kidpreneur-hub/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// NewTestAdapter wraps a fresh in-memory store in a persistence adapter.
func NewTestAdapter(t *testing.T) (*store.Adapter, *store.SQLiteStore) {
	t.Helper()

	s := NewTestStore(t)
	return store.NewAdapter(s), s
}
