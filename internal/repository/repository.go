package repository

import (
	"context"
)

// SessionValueRepository stores opaque session values by key. It satisfies
// session.KV.
type SessionValueRepository interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set upserts the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key if present.
	Delete(ctx context.Context, key string) error
}

// CredentialRepository defines the interface for credential data access operations.
type CredentialRepository interface {
	// PasswordHash returns the bcrypt hash stored for username, and false
	// when the user is unknown.
	PasswordHash(ctx context.Context, username string) (string, bool, error)

	// UpsertCredential creates or replaces the hash stored for username.
	UpsertCredential(ctx context.Context, username, passwordHash string) error
}
