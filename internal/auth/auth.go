// Package auth implements the admin gate.
//
// The gate is a placeholder. StaticAuthenticator compares against two
// literals compiled into the binary, with no hashing, lockout or rate
// limiting. Views depend only on the Authenticator interface so that a
// real credential store can replace it.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/nhle/kidpreneur-hub/internal/credential"
	"github.com/nhle/kidpreneur-hub/internal/model"
)

// ErrInvalidCredentials is returned when the username or password does
// not match.
var ErrInvalidCredentials = errors.New("wrong username or password")

// Authenticator checks admin login requests.
type Authenticator interface {
	Authenticate(ctx context.Context, req model.AdminLoginRequest) error
}

// Built-in placeholder credentials.
const (
	StaticUsername = "shivr4m"
	StaticPassword = "Password12345"
)

// StaticAuthenticator accepts exactly one hardcoded username/password pair.
type StaticAuthenticator struct {
	Username string
	Password string
}

// NewStatic returns the authenticator with the built-in credentials.
func NewStatic() StaticAuthenticator {
	return StaticAuthenticator{Username: StaticUsername, Password: StaticPassword}
}

// Authenticate compares req against the configured literals.
func (a StaticAuthenticator) Authenticate(_ context.Context, req model.AdminLoginRequest) error {
	if req.Username == a.Username && req.Password == a.Password {
		return nil
	}
	return ErrInvalidCredentials
}

// PasswordKey is the keyring entry holding the admin password.
const PasswordKey = "admin-password"

// SecretStore is the subset of credential.Store used by KeyringAuthenticator.
type SecretStore interface {
	Get(key string) (string, error)
}

// KeyringAuthenticator checks the password against a secret stored in the
// system keyring.
type KeyringAuthenticator struct {
	Username string
	Secrets  SecretStore
}

// NewKeyring returns an authenticator for username backed by secrets.
func NewKeyring(username string, secrets SecretStore) KeyringAuthenticator {
	return KeyringAuthenticator{Username: username, Secrets: secrets}
}

// Authenticate looks up the stored password and compares it with req.
// A missing password means nobody can log in.
func (a KeyringAuthenticator) Authenticate(_ context.Context, req model.AdminLoginRequest) error {
	stored, err := a.Secrets.Get(PasswordKey)
	if errors.Is(err, credential.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("loading admin password: %w", err)
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(stored)) == 1
	if userOK && passOK {
		return nil
	}
	return ErrInvalidCredentials
}
