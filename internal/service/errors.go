package service

import (
	"errors"
	"fmt"
)

// Facade-level errors. Reference resolution failures are distinct from
// plain absence: they mean a foreign id in the input did not resolve, and
// the referencing entity was never constructed.
var (
	// ErrReferenceNotFound is the generic "foreign id did not resolve"
	// error. Entity-specific variants wrap it.
	ErrReferenceNotFound = errors.New("referenced entity not found")

	// ErrOwnerNotFound indicates a place's owner_id did not resolve to a user.
	ErrOwnerNotFound = fmt.Errorf("%w: owner", ErrReferenceNotFound)

	// ErrAmenityRefNotFound indicates an amenity id in a place's amenity
	// list did not resolve.
	ErrAmenityRefNotFound = fmt.Errorf("%w: amenity", ErrReferenceNotFound)

	// ErrReviewUserNotFound indicates a review's user_id did not resolve.
	ErrReviewUserNotFound = fmt.Errorf("%w: user", ErrReferenceNotFound)

	// ErrReviewPlaceNotFound indicates a review's place_id did not resolve.
	ErrReviewPlaceNotFound = fmt.Errorf("%w: place", ErrReferenceNotFound)

	// ErrImmutableOwner is returned when an update tries to reassign a
	// place's owner. Ownership is fixed at creation.
	ErrImmutableOwner = errors.New("place owner cannot be reassigned")
)

// FacadeError wraps unexpected errors from facade operations with context.
// Sentinel errors (validation, not-found, duplicate, reference) propagate
// unwrapped so the API layer can match them with errors.Is.
type FacadeError struct {
	Operation string // The operation that failed (e.g., "create_place")
	Message   string // Human-readable description
	Err       error  // Original error
}

// Error implements the error interface for FacadeError.
func (e *FacadeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("facade %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("facade %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *FacadeError) Unwrap() error {
	return e.Err
}
