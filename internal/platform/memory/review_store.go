package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/store"
)

// ReviewStore is the in-memory implementation of store.ReviewStore.
type ReviewStore struct {
	mu      sync.RWMutex
	reviews map[uuid.UUID]domain.Review
}

var _ store.ReviewStore = (*ReviewStore)(nil)

// NewReviewStore creates an empty in-memory review store.
func NewReviewStore() *ReviewStore {
	return &ReviewStore{reviews: make(map[uuid.UUID]domain.Review)}
}

// Create saves a new review. Duplicate ids are rejected.
func (s *ReviewStore) Create(_ context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[review.ID]; ok {
		return store.ErrAlreadyExists
	}

	s.reviews[review.ID] = *review
	return nil
}

// GetByID retrieves a review by ID.
func (s *ReviewStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[id]
	if !ok {
		return nil, store.ErrReviewNotFound
	}
	return &review, nil
}

// List returns a snapshot of all reviews.
func (s *ReviewStore) List(_ context.Context) ([]*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]*domain.Review, 0, len(s.reviews))
	for _, review := range s.reviews {
		r := review
		reviews = append(reviews, &r)
	}
	return reviews, nil
}

// Update writes a complete review back to the store.
func (s *ReviewStore) Update(_ context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[review.ID]; !ok {
		return store.ErrReviewNotFound
	}

	s.reviews[review.ID] = *review
	return nil
}

// Delete removes a review by ID.
func (s *ReviewStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return store.ErrReviewNotFound
	}
	delete(s.reviews, id)
	return nil
}
