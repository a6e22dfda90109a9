// Package auth handles accounts and session tokens.
package auth

import (
	"context"

	"github.com/mmynk/pennywise/internal/models"
)

// Authenticator registers and verifies accounts. Services depend on this
// interface so the credential scheme can change without touching them.
type Authenticator interface {
	// Register creates a new account. The credential is a password for
	// PasswordAuthenticator.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the account when the credential matches.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// User returns an account by id, or ErrUserNotFound.
	User(ctx context.Context, id string) (*models.User, error)

	ValidateCredential(credential string) error
}
