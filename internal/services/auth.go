package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"myticket-storefront/internal/models"

	"github.com/rs/zerolog"
)

// AuthService handles login, registration and password reset by
// delegating to the external identity provider
type AuthService struct {
	provider IdentityProvider
	logger   zerolog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(provider IdentityProvider, logger zerolog.Logger) *AuthService {
	return &AuthService{
		provider: provider,
		logger:   logger.With().Str("component", "auth").Logger(),
	}
}

// LoginRequest represents a user login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordResetRequest represents a password reset request
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// Validate validates the login request
func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}

	if r.Password == "" {
		return errors.New("password is required")
	}

	return nil
}

// Validate validates the registration request
func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}

	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	return nil
}

// Login authenticates against the identity provider and returns the
// session state to persist. Provider failures keep their message so the
// screen boundary can surface it verbatim.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*models.AuthSession, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	session, err := s.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login failed")
		return nil, err
	}

	s.logger.Info().Str("user_id", session.UserID).Msg("user logged in")

	return toAuthSession(session), nil
}

// Register creates a new account with the identity provider
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*models.AuthSession, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	session, err := s.provider.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Warn().Err(err).Msg("registration failed")
		return nil, err
	}

	s.logger.Info().Str("user_id", session.UserID).Msg("user registered")

	return toAuthSession(session), nil
}

// RequestPasswordReset asks the provider to start a reset flow
func (s *AuthService) RequestPasswordReset(ctx context.Context, req *PasswordResetRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", models.ErrInvalidInput)
	}

	return s.provider.SendPasswordReset(ctx, req.Email)
}

func toAuthSession(session *IdentitySession) *models.AuthSession {
	return &models.AuthSession{
		User: models.User{
			ID:    session.UserID,
			Email: session.Email,
		},
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Unix(),
	}
}
