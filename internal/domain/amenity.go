package domain

import "strings"

// Amenity-specific validation errors
var (
	// ErrAmenityNameRequired is returned when the name is empty after trimming.
	ErrAmenityNameRequired = NewValidationError("name", "is required", nil)

	// ErrAmenityNameTooLong is returned when the name exceeds 50 characters.
	ErrAmenityNameTooLong = NewValidationError("name", "must be at most 50 characters", nil)
)

// Amenity represents a feature a place can offer, such as "Wifi".
type Amenity struct {
	Entity
	Name string `json:"name"`
}

// AmenityUpdate carries the optional fields of a partial amenity update.
type AmenityUpdate struct {
	Name *string
}

// NewAmenity creates a new Amenity with a fresh identity.
// Returns an error if validation fails.
func NewAmenity(name string) (*Amenity, error) {
	amenity := &Amenity{
		Entity: NewEntity(),
		Name:   name,
	}

	if err := amenity.Validate(); err != nil {
		return nil, err
	}

	return amenity, nil
}

// Validate checks the amenity's fields.
func (a *Amenity) Validate() error {
	if err := a.validateEntity(); err != nil {
		return err
	}

	if strings.TrimSpace(a.Name) == "" {
		return ErrAmenityNameRequired
	}
	if len(a.Name) > 50 {
		return ErrAmenityNameTooLong
	}

	return nil
}

// Apply sets the fields present in the update and commits only if the
// result validates. The receiver is untouched on failure.
func (a *Amenity) Apply(update AmenityUpdate) error {
	next := *a
	if update.Name != nil {
		next.Name = *update.Name
	}

	if err := next.Validate(); err != nil {
		return err
	}

	next.Touch()
	*a = next
	return nil
}
