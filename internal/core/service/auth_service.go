package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/peakform/fitness-api/internal/core/domain"
	"github.com/peakform/fitness-api/internal/core/ports"
	"github.com/peakform/fitness-api/pkg/password"
)

// AuthService implements registration, login, logout, and current-user
// resolution on top of the credential hasher, user store, and session manager.
type AuthService struct {
	users    ports.UserRepository
	sessions *SessionManager
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions *SessionManager, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

// Register creates the account and logs it in. The email conflict is checked
// here before insert and again by the repository's unique constraint.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, domain.ErrEmailRequired
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	if input.Username != "" {
		if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
			return nil, domain.ErrUsernameTaken
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("check username: %w", err)
		}
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username:      input.Username,
		Email:         email,
		PasswordHash:  hash,
		Weight:        input.Weight,
		Height:        input.Height,
		FitnessGoal:   input.FitnessGoal,
		ActivityLevel: input.ActivityLevel,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("user registered")
	return &ports.AuthResult{User: user, Token: token}, nil
}

// Login authenticates by email or username. Unknown identity and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	user, err := s.findAccount(ctx, input)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.PasswordHash) {
		s.logger.Debug().Int64("user_id", user.ID).Msg("password verification failed")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")
	return &ports.AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) findAccount(ctx context.Context, input ports.LoginInput) (*domain.User, error) {
	if email := strings.TrimSpace(input.Email); email != "" {
		return s.users.FindByEmail(ctx, email)
	}
	if input.Username != "" {
		return s.users.FindByUsername(ctx, input.Username)
	}
	return nil, domain.ErrUserNotFound
}

// Logout destroys the session and reports whether a live one existed.
// Idempotent: an already-dead token succeeds with false.
func (s *AuthService) Logout(ctx context.Context, token string) (bool, error) {
	return s.sessions.Destroy(ctx, token)
}

// CurrentUser resolves the token to the owning account.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Session outlived the account; treat as unauthenticated.
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
