package store

import "context"

// Persisted keys. The names match the layout written by earlier versions of
// the app, so existing data keeps loading.
const (
	KeyIdeas     = "kidIdeas"
	KeyDarkMode  = "darkMode"
	KeySortOrder = "sortOrder"
)

// KV is a flat string key-value store. Each key is read and written
// independently; there is no transactional grouping across keys.
type KV interface {
	// Get returns the value stored under key. The bool is false when the
	// key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every stored key in lexical order.
	Keys(ctx context.Context) ([]string, error)

	Close() error
}
