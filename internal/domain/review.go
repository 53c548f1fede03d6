package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Review-specific validation errors
var (
	// ErrReviewTextRequired is returned when the text is empty after trimming.
	ErrReviewTextRequired = NewValidationError("text", "is required", nil)

	// ErrRatingOutOfRange is returned when the rating is outside [1, 5].
	ErrRatingOutOfRange = NewValidationError("rating", "must be between 1 and 5", nil)

	// ErrReviewUserRequired is returned when the authoring user reference is missing.
	ErrReviewUserRequired = NewValidationError("user_id", "is required", nil)

	// ErrReviewPlaceRequired is returned when the reviewed place reference is missing.
	ErrReviewPlaceRequired = NewValidationError("place_id", "is required", nil)
)

// Review represents a user's review of a place. UserID and PlaceID are
// identifier references resolved through the facade.
type Review struct {
	Entity
	Text    string    `json:"text"`
	Rating  int       `json:"rating"`
	UserID  uuid.UUID `json:"user_id"`
	PlaceID uuid.UUID `json:"place_id"`
}

// ReviewUpdate carries the optional fields of a partial review update.
// A non-nil PlaceID re-points the review to another place; the facade is
// responsible for moving the review between the places' derived indexes.
type ReviewUpdate struct {
	Text    *string
	Rating  *int
	UserID  *uuid.UUID
	PlaceID *uuid.UUID
}

// NewReview creates a new Review with a fresh identity. Both references
// must already be resolved by the caller.
// Returns an error if validation fails.
func NewReview(text string, rating int, userID, placeID uuid.UUID) (*Review, error) {
	review := &Review{
		Entity:  NewEntity(),
		Text:    text,
		Rating:  rating,
		UserID:  userID,
		PlaceID: placeID,
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks every field's rule. The rating must be an integer in
// [1, 5]; JSON number inputs are coerced to int at the API boundary only
// when they are integral, so a stored rating is always a whole number.
func (r *Review) Validate() error {
	if err := r.validateEntity(); err != nil {
		return err
	}

	if strings.TrimSpace(r.Text) == "" {
		return ErrReviewTextRequired
	}
	if r.Rating < 1 || r.Rating > 5 {
		return ErrRatingOutOfRange
	}

	if r.UserID == uuid.Nil {
		return ErrReviewUserRequired
	}
	if r.PlaceID == uuid.Nil {
		return ErrReviewPlaceRequired
	}

	return nil
}

// Apply sets the fields present in the update and commits only if the
// result validates. The receiver is untouched on failure.
func (r *Review) Apply(update ReviewUpdate) error {
	next := *r
	if update.Text != nil {
		next.Text = *update.Text
	}
	if update.Rating != nil {
		next.Rating = *update.Rating
	}
	if update.UserID != nil {
		next.UserID = *update.UserID
	}
	if update.PlaceID != nil {
		next.PlaceID = *update.PlaceID
	}

	if err := next.Validate(); err != nil {
		return err
	}

	next.Touch()
	*r = next
	return nil
}
