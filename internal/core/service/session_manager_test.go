package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/peakform/fitness-api/internal/core/domain"
)

func TestSessionManager_CreateAndResolve(t *testing.T) {
	m := NewSessionManager(newStubSessionStore(), time.Hour)

	token, err := m.Create(context.Background(), 42)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(token) != tokenBytes*2 {
		t.Fatalf("token length = %d, want %d hex chars", len(token), tokenBytes*2)
	}

	userID, err := m.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("Resolve = %d, want 42", userID)
	}
}

func TestSessionManager_TokensAreUnique(t *testing.T) {
	m := NewSessionManager(newStubSessionStore(), time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		token, err := m.Create(context.Background(), int64(i))
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token issued: %s", token)
		}
		seen[token] = true
	}
}

func TestSessionManager_Resolve_Unknown(t *testing.T) {
	m := NewSessionManager(newStubSessionStore(), time.Hour)

	if _, err := m.Resolve(context.Background(), "deadbeef"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := m.Resolve(context.Background(), ""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("empty token: expected ErrUnauthorized, got %v", err)
	}
}

func TestSessionManager_Resolve_Expired(t *testing.T) {
	store := newStubSessionStore()
	m := NewSessionManager(store, -time.Minute)

	token, err := m.Create(context.Background(), 7)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := m.Resolve(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
	// The expired entry is reaped on resolve.
	if _, err := store.Get(context.Background(), token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected expired session to be deleted, got %v", err)
	}
}

func TestSessionManager_Destroy(t *testing.T) {
	m := NewSessionManager(newStubSessionStore(), time.Hour)

	token, err := m.Create(context.Background(), 9)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	destroyed, err := m.Destroy(context.Background(), token)
	if err != nil {
		t.Fatalf("Destroy returned error: %v", err)
	}
	if !destroyed {
		t.Fatalf("live session should report destroyed")
	}
	if _, err := m.Resolve(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after destroy, got %v", err)
	}
	if destroyed, err := m.Destroy(context.Background(), token); err != nil || destroyed {
		t.Fatalf("second Destroy = %v, %v; want false, nil", destroyed, err)
	}
	if destroyed, err := m.Destroy(context.Background(), ""); err != nil || destroyed {
		t.Fatalf("Destroy of empty token = %v, %v; want false, nil", destroyed, err)
	}
}

func TestSessionManager_Destroy_ExpiredNotCountedAsLive(t *testing.T) {
	m := NewSessionManager(newStubSessionStore(), -time.Minute)

	token, err := m.Create(context.Background(), 9)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	destroyed, err := m.Destroy(context.Background(), token)
	if err != nil {
		t.Fatalf("Destroy returned error: %v", err)
	}
	if destroyed {
		t.Fatalf("expired session should not report as a live destroy")
	}
}
