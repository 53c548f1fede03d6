package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/store"
)

// CreateUserInput holds the fields accepted when registering a user.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// CreateUser validates and stores a new user. The email is pre-checked
// against the store for a friendlier error, and the store re-checks it
// under its own lock, so a race cannot slip a duplicate through.
func (f *Facade) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if _, err := f.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, store.ErrEmailExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, &FacadeError{Operation: "create_user", Message: "email lookup failed", Err: err}
	}

	user, err := domain.NewUser(input.FirstName, input.LastName, input.Email, input.IsAdmin)
	if err != nil {
		return nil, err
	}

	if input.Password != "" {
		hashed, err := f.hasher.Hash(input.Password)
		if err != nil {
			f.logger.Error("failed to hash password", "error", err)
			return nil, &FacadeError{Operation: "create_user", Message: "password hashing failed", Err: err}
		}
		user.HashedPassword = hashed
	}

	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}

	f.counter.IncEntityCreated("user")
	f.logger.Info("user created", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// GetUser retrieves a user by ID.
func (f *Facade) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return f.users.GetByID(ctx, id)
}

// GetUserByEmail retrieves a user by email.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.users.GetByEmail(ctx, email)
}

// ListUsers returns all users.
func (f *Facade) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return f.users.List(ctx)
}

// UpdateUser applies a partial update. Fields absent from the update are
// untouched; the entity re-validates before anything is written back.
func (f *Facade) UpdateUser(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error) {
	user, err := f.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := user.Apply(update); err != nil {
		return nil, err
	}

	if err := f.users.Update(ctx, user); err != nil {
		return nil, err
	}

	f.logger.Info("user updated", "user_id", user.ID)
	return user, nil
}
