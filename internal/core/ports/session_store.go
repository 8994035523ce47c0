package ports

import (
	"context"

	"github.com/peakform/fitness-api/internal/core/domain"
)

// SessionStore persists sessions keyed by token. Implementations may expire
// entries natively (Redis TTL) or rely on the manager's lazy expiry check;
// either way an expired session must never be handed back as live.
type SessionStore interface {
	Put(ctx context.Context, session domain.Session) error
	// Get returns domain.ErrSessionNotFound for unknown tokens.
	Get(ctx context.Context, token string) (*domain.Session, error)
	// Delete is idempotent: deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
