package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Verifier decides whether a username/password pair may log in.
type Verifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

// CredentialLookup returns the stored password hash for a username.
type CredentialLookup interface {
	PasswordHash(ctx context.Context, username string) (string, bool, error)
}

// StaticVerifier accepts exactly one configured pair, compared verbatim.
type StaticVerifier struct {
	username string
	password string
}

// NewStaticVerifier creates a verifier accepting only username/password.
func NewStaticVerifier(username, password string) *StaticVerifier {
	return &StaticVerifier{username: username, password: password}
}

// Verify compares both fields exactly; no trimming or case folding.
func (v *StaticVerifier) Verify(_ context.Context, username, password string) (bool, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	return userOK && passOK, nil
}

// BcryptVerifier checks passwords against bcrypt hashes from a lookup.
type BcryptVerifier struct {
	lookup CredentialLookup
	logger zerolog.Logger
}

// NewBcryptVerifier creates a verifier backed by lookup.
func NewBcryptVerifier(lookup CredentialLookup, logger zerolog.Logger) *BcryptVerifier {
	return &BcryptVerifier{
		lookup: lookup,
		logger: logger.With().Str("component", "verifier").Logger(),
	}
}

// Verify reports false for unknown users and wrong passwords. Only lookup
// failures and malformed hashes are returned as errors.
func (v *BcryptVerifier) Verify(ctx context.Context, username, password string) (bool, error) {
	hash, ok, err := v.lookup.PasswordHash(ctx, username)
	if err != nil {
		return false, fmt.Errorf("failed to look up credential: %w", err)
	}
	if !ok {
		v.logger.Debug().Str("username", username).Msg("unknown user")
		return false, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		v.logger.Error().Err(err).Str("username", username).Msg("stored hash is unusable")
		return false, fmt.Errorf("failed to compare password: %w", err)
	}
}

// HashPassword returns a bcrypt hash of password at the default cost.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
