package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/store"
)

// CreateAmenity validates and stores a new amenity. Name uniqueness is
// pre-checked here and enforced again by the store under its lock.
func (f *Facade) CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	if _, err := f.amenities.GetByName(ctx, name); err == nil {
		return nil, store.ErrAmenityNameExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, &FacadeError{Operation: "create_amenity", Message: "name lookup failed", Err: err}
	}

	amenity, err := domain.NewAmenity(name)
	if err != nil {
		return nil, err
	}

	if err := f.amenities.Create(ctx, amenity); err != nil {
		return nil, err
	}

	f.counter.IncEntityCreated("amenity")
	f.logger.Info("amenity created", "amenity_id", amenity.ID, "name", amenity.Name)
	return amenity, nil
}

// GetAmenity retrieves an amenity by ID.
func (f *Facade) GetAmenity(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	return f.amenities.GetByID(ctx, id)
}

// GetAmenityByName retrieves an amenity by name.
func (f *Facade) GetAmenityByName(ctx context.Context, name string) (*domain.Amenity, error) {
	return f.amenities.GetByName(ctx, name)
}

// ListAmenities returns all amenities.
func (f *Facade) ListAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	return f.amenities.List(ctx)
}

// UpdateAmenity applies a partial update and writes through on success.
func (f *Facade) UpdateAmenity(ctx context.Context, id uuid.UUID, update domain.AmenityUpdate) (*domain.Amenity, error) {
	amenity, err := f.amenities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := amenity.Apply(update); err != nil {
		return nil, err
	}

	if err := f.amenities.Update(ctx, amenity); err != nil {
		return nil, err
	}

	f.logger.Info("amenity updated", "amenity_id", amenity.ID)
	return amenity, nil
}
