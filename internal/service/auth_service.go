package service

import (
	"context"
	"fmt"

	"crazy-coffee/internal/auth"
	"crazy-coffee/internal/model"
	"crazy-coffee/internal/session"

	"github.com/rs/zerolog"
)

const (
	homePath = "/"

	// NoticeRegistered is shown after a registration form is accepted.
	NoticeRegistered = "Registro exitoso!"
)

// authService implements AuthService.
type authService struct {
	verifier auth.Verifier
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(verifier auth.Verifier, logger zerolog.Logger) AuthService {
	return &authService{
		verifier: verifier,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Login validates the form, consults the verifier and records the session
// flag. Rejected credentials return model.ErrInvalidCredentials and leave
// the store untouched.
func (s *authService) Login(ctx context.Context, store *session.Store, form model.LoginForm) (*AuthResult, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.verifier.Verify(ctx, form.Username, form.Password)
	if err != nil {
		s.logger.Error().Err(err).Str("username", form.Username).Msg("credential check failed")
		return nil, fmt.Errorf("failed to verify credentials: %w", err)
	}
	if !ok {
		s.logger.Warn().Str("username", form.Username).Msg("login rejected")
		return nil, model.ErrInvalidCredentials
	}

	if err := store.Save(ctx, model.UserData{Username: form.Username}); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	s.logger.Info().Str("username", form.Username).Msg("login accepted")

	return &AuthResult{Redirect: homePath}, nil
}

// Register accepts any fully filled form. The submission is logged and
// dropped; no account is created and nothing about it is stored.
func (s *authService) Register(_ context.Context, form model.RegisterForm) (*AuthResult, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("nombre", form.GivenName).
		Str("apellido", form.FamilyName).
		Str("email", form.Email).
		Str("username", form.Username).
		Msg("registration received")

	return &AuthResult{Redirect: homePath, Notice: NoticeRegistered}, nil
}

// Logout clears the session flag.
func (s *authService) Logout(ctx context.Context, store *session.Store) (*AuthResult, error) {
	if err := store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}

	s.logger.Info().Msg("logout")

	return &AuthResult{Redirect: homePath}, nil
}
