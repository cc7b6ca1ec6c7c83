package repository

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepository(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCredentialRepository(pool, zerolog.Nop())
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		hash, ok, err := repo.PasswordHash(ctx, "nobody")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, hash)
	})

	t.Run("upsert and read back", func(t *testing.T) {
		require.NoError(t, repo.UpsertCredential(ctx, "barista", "$2a$10$first"))

		hash, ok, err := repo.PasswordHash(ctx, "barista")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "$2a$10$first", hash)
	})

	t.Run("upsert replaces hash", func(t *testing.T) {
		require.NoError(t, repo.UpsertCredential(ctx, "barista", "$2a$10$second"))

		hash, ok, err := repo.PasswordHash(ctx, "barista")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "$2a$10$second", hash)
	})

	t.Run("usernames are case sensitive", func(t *testing.T) {
		_, ok, err := repo.PasswordHash(ctx, "Barista")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
