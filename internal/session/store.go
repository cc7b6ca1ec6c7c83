package session

import (
	"context"
	"encoding/json"
	"fmt"

	"crazy-coffee/internal/model"

	"github.com/rs/zerolog"
)

const (
	// UserDataKey is the fixed key the session flag lives under.
	UserDataKey = "userData"

	flashKey = "flash"
)

// Store records whether a user is logged in for one client.
type Store struct {
	kv     KV
	logger zerolog.Logger
}

// NewStore creates a session store writing through kv.
func NewStore(kv KV, logger zerolog.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// Save serializes data under UserDataKey, replacing any previous value.
func (s *Store) Save(ctx context.Context, data model.UserData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode session data: %w", err)
	}

	if err := s.kv.Set(ctx, UserDataKey, raw); err != nil {
		s.logger.Error().Err(err).Msg("failed to save session data")
		return fmt.Errorf("failed to save session data: %w", err)
	}

	s.logger.Debug().Str("username", data.Username).Msg("session saved")
	return nil
}

// Read returns the stored user data, or nil when nobody is logged in.
// A value that cannot be decoded yields model.ErrCorruptSession.
func (s *Store) Read(ctx context.Context) (*model.UserData, error) {
	raw, ok, err := s.kv.Get(ctx, UserDataKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session data: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var data model.UserData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Warn().Err(err).Msg("stored session data is corrupt")
		return nil, fmt.Errorf("%w: %v", model.ErrCorruptSession, err)
	}
	return &data, nil
}

// Clear removes the session flag.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, UserDataKey); err != nil {
		return fmt.Errorf("failed to clear session data: %w", err)
	}
	s.logger.Debug().Msg("session cleared")
	return nil
}

// IsAuthenticated reports whether Read finds user data.
func (s *Store) IsAuthenticated(ctx context.Context) (bool, error) {
	data, err := s.Read(ctx)
	if err != nil {
		return false, err
	}
	return data != nil, nil
}

// SetFlash stores a one-shot notice shown on the next rendered page.
func (s *Store) SetFlash(ctx context.Context, notice string) error {
	if err := s.kv.Set(ctx, flashKey, []byte(notice)); err != nil {
		return fmt.Errorf("failed to save notice: %w", err)
	}
	return nil
}

// PopFlash returns the pending notice, if any, and removes it.
func (s *Store) PopFlash(ctx context.Context) (string, error) {
	raw, ok, err := s.kv.Get(ctx, flashKey)
	if err != nil {
		return "", fmt.Errorf("failed to read notice: %w", err)
	}
	if !ok {
		return "", nil
	}
	if err := s.kv.Delete(ctx, flashKey); err != nil {
		return "", fmt.Errorf("failed to clear notice: %w", err)
	}
	return string(raw), nil
}
