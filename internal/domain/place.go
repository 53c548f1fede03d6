package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Place-specific validation errors
var (
	// ErrTitleRequired is returned when the title is empty after trimming.
	ErrTitleRequired = NewValidationError("title", "is required", nil)

	// ErrTitleTooLong is returned when the title exceeds 100 characters.
	ErrTitleTooLong = NewValidationError("title", "must be at most 100 characters", nil)

	// ErrPriceNotPositive is returned when the price is zero or negative.
	ErrPriceNotPositive = NewValidationError("price", "must be a positive number", nil)

	// ErrLatitudeOutOfRange is returned when the latitude is outside [-90, 90].
	ErrLatitudeOutOfRange = NewValidationError("latitude", "must be between -90 and 90", nil)

	// ErrLongitudeOutOfRange is returned when the longitude is outside [-180, 180].
	ErrLongitudeOutOfRange = NewValidationError("longitude", "must be between -180 and 180", nil)

	// ErrOwnerRequired is returned when the owner reference is missing.
	ErrOwnerRequired = NewValidationError("owner_id", "is required", nil)
)

// Place represents a rental listing. Cross-entity fields hold identifier
// references, never pointers to other entities; the facade resolves them
// through the stores. ReviewIDs is a derived index kept consistent with
// the review store by the facade.
type Place struct {
	Entity
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	AmenityIDs  []uuid.UUID `json:"amenity_ids"`
	ReviewIDs   []uuid.UUID `json:"review_ids"`
}

// PlaceUpdate carries the optional scalar fields of a partial place
// update. Owner reassignment and amenity replacement are facade-level
// operations, not part of this struct.
type PlaceUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
}

// NewPlace creates a new Place with a fresh identity and no attached
// amenities or reviews. The owner must already be resolved by the caller.
// Returns an error if validation fails.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID uuid.UUID) (*Place, error) {
	place := &Place{
		Entity:      NewEntity(),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}

	return place, nil
}

// Validate checks every field's rule. Range checks run on every create
// and every update. The -90/90 and -180/180 boundaries are inclusive.
func (p *Place) Validate() error {
	if err := p.validateEntity(); err != nil {
		return err
	}

	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}
	if len(p.Title) > 100 {
		return ErrTitleTooLong
	}

	if p.Price <= 0 {
		return ErrPriceNotPositive
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return ErrLatitudeOutOfRange
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return ErrLongitudeOutOfRange
	}

	if p.OwnerID == uuid.Nil {
		return ErrOwnerRequired
	}

	return nil
}

// Apply sets the scalar fields present in the update and commits only if
// the result validates. The receiver is untouched on failure.
func (p *Place) Apply(update PlaceUpdate) error {
	next := *p
	if update.Title != nil {
		next.Title = *update.Title
	}
	if update.Description != nil {
		next.Description = *update.Description
	}
	if update.Price != nil {
		next.Price = *update.Price
	}
	if update.Latitude != nil {
		next.Latitude = *update.Latitude
	}
	if update.Longitude != nil {
		next.Longitude = *update.Longitude
	}

	if err := next.Validate(); err != nil {
		return err
	}

	next.Touch()
	*p = next
	return nil
}

// AddAmenity attaches an amenity by id. Idempotent: a second attachment
// of the same id is a no-op and does not touch the timestamp.
func (p *Place) AddAmenity(amenityID uuid.UUID) {
	if containsID(p.AmenityIDs, amenityID) {
		return
	}
	p.AmenityIDs = append(p.AmenityIDs, amenityID)
	p.Touch()
}

// SetAmenities replaces the full amenity list, preserving input order and
// dropping duplicates.
func (p *Place) SetAmenities(amenityIDs []uuid.UUID) {
	p.AmenityIDs = nil
	for _, id := range amenityIDs {
		if !containsID(p.AmenityIDs, id) {
			p.AmenityIDs = append(p.AmenityIDs, id)
		}
	}
	p.Touch()
}

// AddReview appends a review id to the derived review index. Idempotent
// by id.
func (p *Place) AddReview(reviewID uuid.UUID) {
	if containsID(p.ReviewIDs, reviewID) {
		return
	}
	p.ReviewIDs = append(p.ReviewIDs, reviewID)
	p.Touch()
}

// RemoveReview detaches a review id from the derived review index.
// A missing id is a no-op.
func (p *Place) RemoveReview(reviewID uuid.UUID) {
	for i, id := range p.ReviewIDs {
		if id == reviewID {
			p.ReviewIDs = append(p.ReviewIDs[:i], p.ReviewIDs[i+1:]...)
			p.Touch()
			return
		}
	}
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
