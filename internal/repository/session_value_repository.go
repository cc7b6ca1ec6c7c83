package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// sessionValueRepository implements SessionValueRepository using PostgreSQL.
type sessionValueRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSessionValueRepository creates a new PostgreSQL-backed session value repository.
func NewSessionValueRepository(pool *pgxpool.Pool, logger zerolog.Logger) SessionValueRepository {
	return &sessionValueRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "session_value").Logger(),
	}
}

// Get retrieves the value stored under key.
func (r *sessionValueRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `
		SELECT value
		FROM session_values
		WHERE key = $1
	`

	var value []byte
	err := r.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		r.logger.Error().Err(err).Str("key", key).Msg("failed to query session value")
		return nil, false, fmt.Errorf("failed to query session value: %w", err)
	}

	return value, true, nil
}

// Set inserts or replaces the value stored under key.
func (r *sessionValueRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO session_values (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.pool.Exec(ctx, query, key, value); err != nil {
		r.logger.Error().Err(err).Str("key", key).Msg("failed to upsert session value")
		return fmt.Errorf("failed to upsert session value: %w", err)
	}

	return nil
}

// Delete removes the value stored under key.
func (r *sessionValueRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM session_values WHERE key = $1`

	if _, err := r.pool.Exec(ctx, query, key); err != nil {
		r.logger.Error().Err(err).Str("key", key).Msg("failed to delete session value")
		return fmt.Errorf("failed to delete session value: %w", err)
	}

	return nil
}
