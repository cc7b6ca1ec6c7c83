package session

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"crazy-coffee/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte("v1")
	require.NoError(t, kv.Set(ctx, "k", value))
	value[0] = 'x'

	got, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v1"), got, "stored value is isolated from caller slice")

	require.NoError(t, kv.Delete(ctx, "k"))
	require.NoError(t, kv.Delete(ctx, "k"))
	assert.Equal(t, 0, kv.Len())
}

func TestMemoryKV_ConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", n%5)
			_ = kv.Set(ctx, key, []byte(key))
			_, _, _ = kv.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, kv.Len())
}

func TestScope_IsolatesClients(t *testing.T) {
	ctx := context.Background()
	shared := NewMemoryKV()

	alice := Scope(shared, "alice")
	bob := Scope(shared, "bob")

	require.NoError(t, alice.Set(ctx, UserDataKey, []byte("a")))

	_, ok, err := bob.Get(ctx, UserDataKey)
	require.NoError(t, err)
	assert.False(t, ok)

	raw, ok, err := shared.Get(ctx, "client:alice:userData")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("a"), raw)

	require.NoError(t, bob.Delete(ctx, UserDataKey))
	_, ok, _ = alice.Get(ctx, UserDataKey)
	assert.True(t, ok, "deleting through one scope leaves the other untouched")
}

func TestManager_For(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(NewMemoryKV(), zerolog.Nop())

	require.NoError(t, manager.For("c1").Save(ctx, model.UserData{Username: "admin"}))

	ok, err := manager.For("c1").IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = manager.For("c2").IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
