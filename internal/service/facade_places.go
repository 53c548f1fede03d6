package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/store"
)

// CreatePlaceInput holds the fields accepted when creating a place.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     uuid.UUID
	AmenityIDs  []uuid.UUID
}

// UpdatePlaceInput holds the fields accepted when updating a place.
// OwnerID is accepted only so reassignment attempts can be rejected
// explicitly; a non-nil value that differs from the stored owner fails
// with ErrImmutableOwner. A non-nil AmenityIDs fully replaces the
// existing attachment list.
type UpdatePlaceInput struct {
	domain.PlaceUpdate
	OwnerID    *uuid.UUID
	AmenityIDs *[]uuid.UUID
}

// CreatePlace resolves the owner and every listed amenity, constructs the
// place, attaches the amenities in input order, and stores it. Any
// failure leaves the place store unchanged; amenity resolution is
// fail-fast on the first unresolved id.
func (f *Facade) CreatePlace(ctx context.Context, input CreatePlaceInput) (*domain.Place, error) {
	if _, err := f.users.GetByID(ctx, input.OwnerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, &FacadeError{Operation: "create_place", Message: "owner lookup failed", Err: err}
	}

	resolved, err := f.resolveAmenities(ctx, input.AmenityIDs)
	if err != nil {
		return nil, err
	}

	place, err := domain.NewPlace(
		input.Title,
		input.Description,
		input.Price,
		input.Latitude,
		input.Longitude,
		input.OwnerID,
	)
	if err != nil {
		return nil, err
	}

	for _, amenityID := range resolved {
		place.AddAmenity(amenityID)
	}

	if err := f.places.Create(ctx, place); err != nil {
		return nil, err
	}

	f.counter.IncEntityCreated("place")
	f.logger.Info("place created",
		"place_id", place.ID,
		"owner_id", place.OwnerID,
		"amenities", len(place.AmenityIDs))
	return place, nil
}

// GetPlace retrieves a place by ID.
func (f *Facade) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	return f.places.GetByID(ctx, id)
}

// ListPlaces returns all places.
func (f *Facade) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	return f.places.List(ctx)
}

// UpdatePlace applies a partial update. Scalar fields are range-checked
// on a copy before anything is committed, amenity ids (if present)
// replace the existing set after fail-fast resolution, and owner
// reassignment is rejected.
func (f *Facade) UpdatePlace(ctx context.Context, id uuid.UUID, input UpdatePlaceInput) (*domain.Place, error) {
	place, err := f.places.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.OwnerID != nil && *input.OwnerID != place.OwnerID {
		return nil, ErrImmutableOwner
	}

	// Resolve replacement amenities before mutating anything, so a bad id
	// cannot leave the place half-updated.
	var replacement []uuid.UUID
	if input.AmenityIDs != nil {
		replacement, err = f.resolveAmenities(ctx, *input.AmenityIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := place.Apply(input.PlaceUpdate); err != nil {
		return nil, err
	}

	if input.AmenityIDs != nil {
		place.SetAmenities(replacement)
	}

	if err := f.places.Update(ctx, place); err != nil {
		return nil, err
	}

	f.logger.Info("place updated", "place_id", place.ID)
	return place, nil
}

// resolveAmenities checks each amenity id against the amenity store,
// failing on the first unresolved id. Input order is preserved.
func (f *Facade) resolveAmenities(ctx context.Context, amenityIDs []uuid.UUID) ([]uuid.UUID, error) {
	resolved := make([]uuid.UUID, 0, len(amenityIDs))
	for _, amenityID := range amenityIDs {
		if _, err := f.amenities.GetByID(ctx, amenityID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrAmenityRefNotFound
			}
			return nil, &FacadeError{Operation: "resolve_amenities", Message: "amenity lookup failed", Err: err}
		}
		resolved = append(resolved, amenityID)
	}
	return resolved, nil
}
