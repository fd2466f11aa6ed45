package credential

import (
	"errors"
	"testing"

	"github.com/99designs/keyring"
)

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore(keyring.NewArrayKeyring(nil))

	if _, err := s.Get("admin-password"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty ring = %v, want ErrNotFound", err)
	}

	if err := s.Set("admin-password", "hunter2"); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get("admin-password")
	if err != nil || got != "hunter2" {
		t.Fatalf("Get = %q, %v", got, err)
	}

	if err := s.Delete("admin-password"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get("admin-password"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v", err)
	}
}
