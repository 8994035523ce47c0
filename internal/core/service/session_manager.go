package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/peakform/fitness-api/internal/core/domain"
	"github.com/peakform/fitness-api/internal/core/ports"
)

const (
	tokenBytes        = 32
	defaultSessionTTL = 24 * time.Hour
)

// SessionManager maps opaque bearer tokens to user ids with expiry. The
// backing store is pluggable; swapping it must not change this contract.
type SessionManager struct {
	store ports.SessionStore
	ttl   time.Duration
}

func NewSessionManager(store ports.SessionStore, ttl time.Duration) *SessionManager {
	if ttl == 0 {
		ttl = defaultSessionTTL
	}
	return &SessionManager{store: store, ttl: ttl}
}

// Create issues a cryptographically random token bound to userID.
func (m *SessionManager) Create(ctx context.Context, userID int64) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	session := domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(m.ttl),
	}
	if err := m.store.Put(ctx, session); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Resolve returns the user id a live token is bound to. Absent, unknown, and
// expired tokens all yield domain.ErrUnauthorized. Expiry is checked lazily
// here even for stores with native TTLs.
func (m *SessionManager) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, domain.ErrUnauthorized
	}

	session, err := m.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return 0, domain.ErrUnauthorized
		}
		return 0, fmt.Errorf("resolve session: %w", err)
	}

	if session.Expired(time.Now().UTC()) {
		_ = m.store.Delete(ctx, token)
		return 0, domain.ErrUnauthorized
	}
	return session.UserID, nil
}

// Destroy removes the session and reports whether a live one was actually
// destroyed. Destroying an unknown, expired, or empty token is a no-op that
// returns false.
func (m *SessionManager) Destroy(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	session, err := m.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("destroy session: %w", err)
	}
	if err := m.store.Delete(ctx, token); err != nil {
		return false, fmt.Errorf("destroy session: %w", err)
	}
	return !session.Expired(time.Now().UTC()), nil
}
