// Package memory provides in-memory store implementations for single-process
// deployments and tests. All stores are safe for concurrent use and honour
// the same contracts as their persistent counterparts.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/peakform/fitness-api/internal/core/domain"
)

// UserStore keeps user accounts in a mutex-guarded map with a monotonic id
// counter. Ids are never reused within the store's lifetime.
type UserStore struct {
	mu     sync.RWMutex
	users  map[int64]domain.User
	nextID int64
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int64]domain.User)}
}

func (s *UserStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
		if user.Username != "" && existing.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}

	s.nextID++
	stored := *user
	stored.ID = s.nextID
	stored.Preferences = map[string]any{}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	s.users[stored.ID] = stored

	out := stored
	return &out, nil
}

func (s *UserStore) FindByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := user
	return &out, nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			out := user
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username != "" && user.Username == username {
			out := user
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
