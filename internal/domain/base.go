package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity holds the identity and timestamp lifecycle shared by every
// domain type. Embedding types get a stable UUID at creation and must
// call Touch after every committed mutation.
type Entity struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEntity creates an Entity with a fresh UUID and both timestamps set
// to the current UTC time.
func NewEntity() Entity {
	now := time.Now().UTC()
	return Entity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes UpdatedAt. Every successful mutation calls this after
// validation passes, never before.
func (e *Entity) Touch() {
	e.UpdatedAt = time.Now().UTC()
}

// validateEntity checks the shared identity fields. Concrete entities
// call this at the top of their own Validate.
func (e *Entity) validateEntity() error {
	if e.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if e.CreatedAt.IsZero() {
		return NewValidationError("created_at", "cannot be zero", nil)
	}
	if e.UpdatedAt.IsZero() {
		return NewValidationError("updated_at", "cannot be zero", nil)
	}
	return nil
}
