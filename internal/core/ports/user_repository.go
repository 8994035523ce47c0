package ports

import (
	"context"

	"github.com/peakform/fitness-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
//
// Create assigns the id (monotonic, never reused within a store's lifetime)
// and must reject duplicate identities with domain.ErrEmailTaken or
// domain.ErrUsernameTaken even when the caller pre-checked — uniqueness is
// enforced at both layers.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
