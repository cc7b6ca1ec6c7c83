package session

import (
	"context"
	"sync"
)

// KV is the durable key-value capability the session store writes through.
// Implementations must be safe for concurrent use.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, overwriting any prior value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// MemoryKV keeps values in process memory. Values are lost on restart.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Len reports how many keys are stored.
func (m *MemoryKV) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

// scopedKV namespaces every key of an underlying KV.
type scopedKV struct {
	kv     KV
	prefix string
}

// Scope returns a view of kv where every key is private to clientID.
func Scope(kv KV, clientID string) KV {
	return &scopedKV{kv: kv, prefix: "client:" + clientID + ":"}
}

func (s *scopedKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.kv.Get(ctx, s.prefix+key)
}

func (s *scopedKV) Set(ctx context.Context, key string, value []byte) error {
	return s.kv.Set(ctx, s.prefix+key, value)
}

func (s *scopedKV) Delete(ctx context.Context, key string) error {
	return s.kv.Delete(ctx, s.prefix+key)
}
