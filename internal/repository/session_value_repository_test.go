package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionValueRepository(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewSessionValueRepository(pool, zerolog.Nop())
	ctx := context.Background()

	t.Run("missing key is absent", func(t *testing.T) {
		value, ok, err := repo.Get(ctx, "client:none:userData")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("set then get", func(t *testing.T) {
		key := "client:a:userData"
		require.NoError(t, repo.Set(ctx, key, []byte(`{"username":"admin","email":""}`)))

		value, ok, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `{"username":"admin","email":""}`, string(value))
	})

	t.Run("set overwrites", func(t *testing.T) {
		key := "client:b:userData"
		require.NoError(t, repo.Set(ctx, key, []byte("first")))
		require.NoError(t, repo.Set(ctx, key, []byte("second")))

		value, ok, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "second", string(value))
	})

	t.Run("delete removes key and tolerates absence", func(t *testing.T) {
		key := "client:c:userData"
		require.NoError(t, repo.Set(ctx, key, []byte("x")))
		require.NoError(t, repo.Delete(ctx, key))
		require.NoError(t, repo.Delete(ctx, key))

		_, ok, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("concurrent writers to distinct keys", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				key := fmt.Sprintf("client:%d:flash", i)
				assert.NoError(t, repo.Set(ctx, key, []byte("ok")))
			}(i)
		}
		wg.Wait()

		for i := 0; i < 10; i++ {
			_, ok, err := repo.Get(ctx, fmt.Sprintf("client:%d:flash", i))
			require.NoError(t, err)
			assert.True(t, ok)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := repo.Get(cancelled, "client:a:userData")
		assert.Error(t, err)
	})
}
