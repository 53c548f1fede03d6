// Package service implements the orchestration layer. The Facade is the
// sole entry point the HTTP layer calls into: it resolves cross-entity
// references against the stores, constructs or mutates entities (which
// self-validate), and writes the result through.
package service

import (
	"log/slog"

	"github.com/hbnb/hbnb-api/internal/service/auth"
	"github.com/hbnb/hbnb-api/internal/store"
)

// EntityCounter records successful entity creations. The metrics
// package implements it; tests and callers that don't care pass nil.
type EntityCounter interface {
	IncEntityCreated(entity string)
}

type noopCounter struct{}

func (noopCounter) IncEntityCreated(string) {}

// Facade orchestrates one store per entity type and enforces the
// cross-entity referential rules.
//
// Operations that touch multiple stores (e.g. CreatePlace reads users and
// amenities, then writes places) are not atomic across stores: a
// concurrent reader may observe a place before its amenity attachment
// completes. Each individual store operation is atomic.
type Facade struct {
	users     store.UserStore
	amenities store.AmenityStore
	places    store.PlaceStore
	reviews   store.ReviewStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
	counter   EntityCounter
}

// NewFacade creates a Facade over the given stores. A nil logger falls
// back to slog.Default.
func NewFacade(
	users store.UserStore,
	amenities store.AmenityStore,
	places store.PlaceStore,
	reviews store.ReviewStore,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) *Facade {
	if logger == nil {
		logger = slog.Default()
	}
	return &Facade{
		users:     users,
		amenities: amenities,
		places:    places,
		reviews:   reviews,
		hasher:    hasher,
		logger:    logger.With("component", "facade"),
		counter:   noopCounter{},
	}
}

// SetEntityCounter replaces the creation counter. Call before serving
// requests; the facade does not synchronize access to the counter field.
func (f *Facade) SetEntityCounter(c EntityCounter) {
	if c != nil {
		f.counter = c
	}
}
