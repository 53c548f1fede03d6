package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/store"
)

// UserStore is the in-memory implementation of store.UserStore.
// Email uniqueness is enforced here, under the store lock, so the
// check-then-act sequence cannot race with concurrent creates.
type UserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[uuid.UUID]domain.User)}
}

// Create saves a new user. Duplicate ids and duplicate emails are rejected.
func (s *UserStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return store.ErrAlreadyExists
	}
	if s.emailTakenLocked(user.Email, user.ID) {
		return store.ErrEmailExists
	}

	s.users[user.ID] = *user
	return nil
}

// GetByID retrieves a user by ID.
func (s *UserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// GetByEmail retrieves a user by email. Linear scan; fine at this scale.
func (s *UserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if equalEmail(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// List returns a snapshot of all users.
func (s *UserStore) List(_ context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(s.users))
	for _, user := range s.users {
		u := user
		users = append(users, &u)
	}
	return users, nil
}

// Update writes a complete user back to the store.
func (s *UserStore) Update(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	if s.emailTakenLocked(user.Email, user.ID) {
		return store.ErrEmailExists
	}

	s.users[user.ID] = *user
	return nil
}

// Delete removes a user by ID.
func (s *UserStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

// emailTakenLocked reports whether another user already holds the email.
// Caller must hold the lock.
func (s *UserStore) emailTakenLocked(email string, selfID uuid.UUID) bool {
	for _, existing := range s.users {
		if existing.ID != selfID && equalEmail(existing.Email, email) {
			return true
		}
	}
	return false
}

// equalEmail compares addresses case-insensitively after trimming, the
// same normalization the domain validation applies.
func equalEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
