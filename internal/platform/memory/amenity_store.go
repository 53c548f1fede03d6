package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/store"
)

// AmenityStore is the in-memory implementation of store.AmenityStore.
// Name uniqueness is enforced here, under the store lock.
type AmenityStore struct {
	mu        sync.RWMutex
	amenities map[uuid.UUID]domain.Amenity
}

var _ store.AmenityStore = (*AmenityStore)(nil)

// NewAmenityStore creates an empty in-memory amenity store.
func NewAmenityStore() *AmenityStore {
	return &AmenityStore{amenities: make(map[uuid.UUID]domain.Amenity)}
}

// Create saves a new amenity. Duplicate ids and duplicate names are rejected.
func (s *AmenityStore) Create(_ context.Context, amenity *domain.Amenity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.amenities[amenity.ID]; ok {
		return store.ErrAlreadyExists
	}
	if s.nameTakenLocked(amenity.Name, amenity.ID) {
		return store.ErrAmenityNameExists
	}

	s.amenities[amenity.ID] = *amenity
	return nil
}

// GetByID retrieves an amenity by ID.
func (s *AmenityStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	amenity, ok := s.amenities[id]
	if !ok {
		return nil, store.ErrAmenityNotFound
	}
	return &amenity, nil
}

// GetByName retrieves an amenity by exact (case-insensitive) name.
func (s *AmenityStore) GetByName(_ context.Context, name string) (*domain.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, amenity := range s.amenities {
		if equalName(amenity.Name, name) {
			a := amenity
			return &a, nil
		}
	}
	return nil, store.ErrAmenityNotFound
}

// List returns a snapshot of all amenities.
func (s *AmenityStore) List(_ context.Context) ([]*domain.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	amenities := make([]*domain.Amenity, 0, len(s.amenities))
	for _, amenity := range s.amenities {
		a := amenity
		amenities = append(amenities, &a)
	}
	return amenities, nil
}

// Update writes a complete amenity back to the store.
func (s *AmenityStore) Update(_ context.Context, amenity *domain.Amenity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.amenities[amenity.ID]; !ok {
		return store.ErrAmenityNotFound
	}
	if s.nameTakenLocked(amenity.Name, amenity.ID) {
		return store.ErrAmenityNameExists
	}

	s.amenities[amenity.ID] = *amenity
	return nil
}

// Delete removes an amenity by ID.
func (s *AmenityStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.amenities[id]; !ok {
		return store.ErrAmenityNotFound
	}
	delete(s.amenities, id)
	return nil
}

// nameTakenLocked reports whether another amenity already holds the name.
// Caller must hold the lock.
func (s *AmenityStore) nameTakenLocked(name string, selfID uuid.UUID) bool {
	for _, existing := range s.amenities {
		if existing.ID != selfID && equalName(existing.Name, name) {
			return true
		}
	}
	return false
}

func equalName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
