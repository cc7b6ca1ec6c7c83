package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// credentialRepository implements CredentialRepository using PostgreSQL.
type credentialRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCredentialRepository creates a new PostgreSQL-backed credential repository.
func NewCredentialRepository(pool *pgxpool.Pool, logger zerolog.Logger) CredentialRepository {
	return &credentialRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "credential").Logger(),
	}
}

// PasswordHash retrieves the stored hash for username.
func (r *credentialRepository) PasswordHash(ctx context.Context, username string) (string, bool, error) {
	query := `
		SELECT password_hash
		FROM credentials
		WHERE username = $1
	`

	var hash string
	err := r.pool.QueryRow(ctx, query, username).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("username", username).Msg("credential not found")
			return "", false, nil
		}
		r.logger.Error().Err(err).Str("username", username).Msg("failed to query credential")
		return "", false, fmt.Errorf("failed to query credential: %w", err)
	}

	return hash, true, nil
}

// UpsertCredential creates or replaces the hash for username.
func (r *credentialRepository) UpsertCredential(ctx context.Context, username, passwordHash string) error {
	query := `
		INSERT INTO credentials (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.pool.Exec(ctx, query, username, passwordHash); err != nil {
		r.logger.Error().Err(err).Str("username", username).Msg("failed to upsert credential")
		return fmt.Errorf("failed to upsert credential: %w", err)
	}

	r.logger.Info().Str("username", username).Msg("credential stored")
	return nil
}
