package session

import "github.com/rs/zerolog"

// Manager hands out per-client stores over one shared backend.
type Manager struct {
	kv     KV
	logger zerolog.Logger
}

// NewManager creates a manager over kv.
func NewManager(kv KV, logger zerolog.Logger) *Manager {
	return &Manager{
		kv:     kv,
		logger: logger.With().Str("component", "session").Logger(),
	}
}

// For returns the store private to clientID.
func (m *Manager) For(clientID string) *Store {
	return NewStore(Scope(m.kv, clientID), m.logger.With().Str("client_id", clientID).Logger())
}
