package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/store"
)

// CreateReviewInput holds the fields accepted when creating a review.
type CreateReviewInput struct {
	Text    string
	Rating  int
	UserID  uuid.UUID
	PlaceID uuid.UUID
}

// CreateReview resolves both references, constructs the review, stores
// it, and appends its id to the place's derived review index. A
// validation failure leaves both stores unchanged.
func (f *Facade) CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	if _, err := f.users.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReviewUserNotFound
		}
		return nil, &FacadeError{Operation: "create_review", Message: "user lookup failed", Err: err}
	}

	place, err := f.places.GetByID(ctx, input.PlaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReviewPlaceNotFound
		}
		return nil, &FacadeError{Operation: "create_review", Message: "place lookup failed", Err: err}
	}

	review, err := domain.NewReview(input.Text, input.Rating, input.UserID, input.PlaceID)
	if err != nil {
		return nil, err
	}

	if err := f.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	place.AddReview(review.ID)
	if err := f.places.Update(ctx, place); err != nil {
		// Keep the derived index consistent: drop the orphaned review.
		if delErr := f.reviews.Delete(ctx, review.ID); delErr != nil {
			f.logger.Error("failed to roll back orphaned review",
				"error", delErr,
				"review_id", review.ID)
		}
		return nil, &FacadeError{Operation: "create_review", Message: "failed to link review to place", Err: err}
	}

	f.counter.IncEntityCreated("review")
	f.logger.Info("review created",
		"review_id", review.ID,
		"place_id", review.PlaceID,
		"user_id", review.UserID)
	return review, nil
}

// GetReview retrieves a review by ID.
func (f *Facade) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return f.reviews.GetByID(ctx, id)
}

// ListReviews returns all reviews.
func (f *Facade) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	return f.reviews.List(ctx)
}

// UpdateReview applies a partial update. Re-pointing user_id or place_id
// requires the new reference to resolve; a changed place moves the review
// id from the old place's index to the new one.
func (f *Facade) UpdateReview(ctx context.Context, id uuid.UUID, update domain.ReviewUpdate) (*domain.Review, error) {
	review, err := f.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.UserID != nil && *update.UserID != review.UserID {
		if _, err := f.users.GetByID(ctx, *update.UserID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrReviewUserNotFound
			}
			return nil, &FacadeError{Operation: "update_review", Message: "user lookup failed", Err: err}
		}
	}

	oldPlaceID := review.PlaceID
	var newPlace *domain.Place
	if update.PlaceID != nil && *update.PlaceID != oldPlaceID {
		newPlace, err = f.places.GetByID(ctx, *update.PlaceID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrReviewPlaceNotFound
			}
			return nil, &FacadeError{Operation: "update_review", Message: "place lookup failed", Err: err}
		}
	}

	if err := review.Apply(update); err != nil {
		return nil, err
	}

	if err := f.reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	if newPlace != nil {
		if err := f.detachReview(ctx, oldPlaceID, review.ID); err != nil {
			return nil, err
		}
		newPlace.AddReview(review.ID)
		if err := f.places.Update(ctx, newPlace); err != nil {
			return nil, &FacadeError{Operation: "update_review", Message: "failed to link review to new place", Err: err}
		}
	}

	f.logger.Info("review updated", "review_id", review.ID)
	return review, nil
}

// DeleteReview removes a review from the review store and from its
// place's derived index. An absent review id is an error, not a no-op.
func (f *Facade) DeleteReview(ctx context.Context, id uuid.UUID) error {
	review, err := f.reviews.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := f.reviews.Delete(ctx, id); err != nil {
		return err
	}
	if err := f.detachReview(ctx, review.PlaceID, id); err != nil {
		return err
	}

	f.logger.Info("review deleted", "review_id", id, "place_id", review.PlaceID)
	return nil
}

// GetReviewsByPlace resolves the place, then resolves each entry of its
// derived review index through the review store. Ids that no longer
// resolve are skipped, so the result can never dangle.
func (f *Facade) GetReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	place, err := f.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	reviews := make([]*domain.Review, 0, len(place.ReviewIDs))
	for _, reviewID := range place.ReviewIDs {
		review, err := f.reviews.GetByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, &FacadeError{Operation: "get_reviews_by_place", Message: "review lookup failed", Err: err}
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// detachReview removes a review id from a place's index and writes the
// place back. A place that no longer exists is tolerated.
func (f *Facade) detachReview(ctx context.Context, placeID, reviewID uuid.UUID) error {
	place, err := f.places.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return &FacadeError{Operation: "detach_review", Message: "place lookup failed", Err: err}
	}

	place.RemoveReview(reviewID)
	if err := f.places.Update(ctx, place); err != nil {
		return &FacadeError{Operation: "detach_review", Message: "failed to update place index", Err: err}
	}
	return nil
}
