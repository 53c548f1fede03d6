package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/store"
)

// PlaceStore is the in-memory implementation of store.PlaceStore.
// Places carry slices (amenity and review indexes), so copies are deep
// with respect to those slices.
type PlaceStore struct {
	mu     sync.RWMutex
	places map[uuid.UUID]domain.Place
}

var _ store.PlaceStore = (*PlaceStore)(nil)

// NewPlaceStore creates an empty in-memory place store.
func NewPlaceStore() *PlaceStore {
	return &PlaceStore{places: make(map[uuid.UUID]domain.Place)}
}

// Create saves a new place. Duplicate ids are rejected.
func (s *PlaceStore) Create(_ context.Context, place *domain.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[place.ID]; ok {
		return store.ErrAlreadyExists
	}

	s.places[place.ID] = clonePlace(place)
	return nil
}

// GetByID retrieves a place by ID.
func (s *PlaceStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	place, ok := s.places[id]
	if !ok {
		return nil, store.ErrPlaceNotFound
	}
	p := clonePlace(&place)
	return &p, nil
}

// List returns a snapshot of all places.
func (s *PlaceStore) List(_ context.Context) ([]*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	places := make([]*domain.Place, 0, len(s.places))
	for _, place := range s.places {
		p := clonePlace(&place)
		places = append(places, &p)
	}
	return places, nil
}

// Update writes a complete place back to the store.
func (s *PlaceStore) Update(_ context.Context, place *domain.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[place.ID]; !ok {
		return store.ErrPlaceNotFound
	}

	s.places[place.ID] = clonePlace(place)
	return nil
}

// Delete removes a place by ID.
func (s *PlaceStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[id]; !ok {
		return store.ErrPlaceNotFound
	}
	delete(s.places, id)
	return nil
}

// clonePlace copies a place including its id slices, so stored state and
// returned values never share backing arrays.
func clonePlace(place *domain.Place) domain.Place {
	p := *place
	if place.AmenityIDs != nil {
		p.AmenityIDs = append([]uuid.UUID(nil), place.AmenityIDs...)
	}
	if place.ReviewIDs != nil {
		p.ReviewIDs = append([]uuid.UUID(nil), place.ReviewIDs...)
	}
	return p
}
