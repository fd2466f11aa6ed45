package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/99designs/keyring"

	"github.com/nhle/kidpreneur-hub/internal/credential"
	"github.com/nhle/kidpreneur-hub/internal/model"
)

func TestStaticAuthenticator(t *testing.T) {
	a := NewStatic()
	ctx := context.Background()

	if err := a.Authenticate(ctx, model.AdminLoginRequest{Username: "shivr4m", Password: "Password12345"}); err != nil {
		t.Fatalf("exact credentials rejected: %v", err)
	}

	bad := []model.AdminLoginRequest{
		{},
		{Username: "shivr4m"},
		{Username: "shivr4m", Password: "password12345"},
		{Username: "SHIVR4M", Password: "Password12345"},
		{Username: " shivr4m", Password: "Password12345"},
		{Username: "admin", Password: "admin"},
	}
	for _, req := range bad {
		if err := a.Authenticate(ctx, req); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Authenticate(%+v) = %v, want ErrInvalidCredentials", req, err)
		}
	}
}

type failingSecrets struct{}

func (failingSecrets) Get(string) (string, error) { return "", errors.New("keyring locked") }

func TestKeyringAuthenticator(t *testing.T) {
	ctx := context.Background()
	secrets := credential.NewStore(keyring.NewArrayKeyring(nil))
	a := NewKeyring("teacher", secrets)

	// Nothing stored yet.
	if err := a.Authenticate(ctx, model.AdminLoginRequest{Username: "teacher"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("empty keyring = %v, want ErrInvalidCredentials", err)
	}

	if err := secrets.Set(PasswordKey, "s3cret"); err != nil {
		t.Fatal(err)
	}

	if err := a.Authenticate(ctx, model.AdminLoginRequest{Username: "teacher", Password: "s3cret"}); err != nil {
		t.Errorf("valid login rejected: %v", err)
	}
	if err := a.Authenticate(ctx, model.AdminLoginRequest{Username: "teacher", Password: "nope"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password = %v", err)
	}
	if err := a.Authenticate(ctx, model.AdminLoginRequest{Username: "shivr4m", Password: "s3cret"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong username = %v", err)
	}

	broken := NewKeyring("teacher", failingSecrets{})
	err := broken.Authenticate(ctx, model.AdminLoginRequest{Username: "teacher", Password: "s3cret"})
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("backend failure should surface as its own error, got %v", err)
	}
}
