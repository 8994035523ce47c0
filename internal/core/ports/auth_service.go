package ports

import (
	"context"

	"github.com/peakform/fitness-api/internal/core/domain"
)

// RegisterInput carries the registration payload into the auth service.
type RegisterInput struct {
	Username      string
	Email         string
	Password      string
	Weight        int
	Height        int
	FitnessGoal   string
	ActivityLevel string
}

// LoginInput identifies the account by email or, failing that, username.
type LoginInput struct {
	Email    string
	Username string
	Password string
}

// AuthResult pairs the authenticated user with a freshly issued session token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService orchestrates the hasher, user store, and session manager.
// Per request the state machine is Anonymous → (Register|Login) →
// Authenticated → (Logout) → Anonymous; there are no other states.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	// Logout succeeds even when the token is already invalid; the bool
	// reports whether a live session was actually destroyed.
	Logout(ctx context.Context, token string) (bool, error)
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}
