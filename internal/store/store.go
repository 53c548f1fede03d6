// Package store defines the persistence contracts for the domain
// entities. Implementations live under internal/platform; the reference
// implementation is the in-memory one in internal/platform/memory.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/hbnb/hbnb-api/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrAlreadyExists if the id is already present and
	// ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address via linear scan.
	// Returns ErrUserNotFound if no user has that email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns a snapshot of all stored users. Order is unspecified.
	List(ctx context.Context) ([]*domain.User, error)

	// Update writes a complete user back to the store.
	// Returns ErrUserNotFound if the user does not exist and
	// ErrEmailExists if the email now collides with another user's.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AmenityStore defines the interface for amenity persistence.
type AmenityStore interface {
	// Create saves a new amenity.
	// Returns ErrAlreadyExists on a duplicate id and ErrAmenityNameExists
	// if the name is already taken.
	Create(ctx context.Context, amenity *domain.Amenity) error

	// GetByID retrieves an amenity by ID.
	// Returns ErrAmenityNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Amenity, error)

	// GetByName retrieves an amenity by exact name via linear scan.
	// Returns ErrAmenityNotFound if no amenity has that name.
	GetByName(ctx context.Context, name string) (*domain.Amenity, error)

	// List returns a snapshot of all stored amenities. Order is unspecified.
	List(ctx context.Context) ([]*domain.Amenity, error)

	// Update writes a complete amenity back to the store.
	// Returns ErrAmenityNotFound if absent, ErrAmenityNameExists on a
	// name collision with another amenity.
	Update(ctx context.Context, amenity *domain.Amenity) error

	// Delete removes an amenity by ID.
	// Returns ErrAmenityNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlaceStore defines the interface for place persistence.
type PlaceStore interface {
	// Create saves a new place. Returns ErrAlreadyExists on a duplicate id.
	Create(ctx context.Context, place *domain.Place) error

	// GetByID retrieves a place by ID.
	// Returns ErrPlaceNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)

	// List returns a snapshot of all stored places. Order is unspecified.
	List(ctx context.Context) ([]*domain.Place, error)

	// Update writes a complete place back to the store.
	// Returns ErrPlaceNotFound if the place does not exist.
	Update(ctx context.Context, place *domain.Place) error

	// Delete removes a place by ID.
	// Returns ErrPlaceNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewStore defines the interface for review persistence.
type ReviewStore interface {
	// Create saves a new review. Returns ErrAlreadyExists on a duplicate id.
	Create(ctx context.Context, review *domain.Review) error

	// GetByID retrieves a review by ID.
	// Returns ErrReviewNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)

	// List returns a snapshot of all stored reviews. Order is unspecified.
	List(ctx context.Context) ([]*domain.Review, error)

	// Update writes a complete review back to the store.
	// Returns ErrReviewNotFound if the review does not exist.
	Update(ctx context.Context, review *domain.Review) error

	// Delete removes a review by ID.
	// Returns ErrReviewNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
