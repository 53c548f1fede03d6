package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewPlace(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()

	place, err := NewPlace("Cozy Loft", "A loft downtown", 120.0, 48.85, 2.35, ownerID)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if place.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if place.Title != "Cozy Loft" {
		t.Errorf("Expected title Cozy Loft, got %s", place.Title)
	}

	if place.OwnerID != ownerID {
		t.Errorf("Expected owner ID %s, got %s", ownerID, place.OwnerID)
	}

	if len(place.AmenityIDs) != 0 {
		t.Errorf("Expected no amenities on a new place, got %d", len(place.AmenityIDs))
	}

	if len(place.ReviewIDs) != 0 {
		t.Errorf("Expected no reviews on a new place, got %d", len(place.ReviewIDs))
	}

	// Test empty title
	_, err = NewPlace("", "desc", 120.0, 48.85, 2.35, ownerID)
	if err != ErrTitleRequired {
		t.Errorf("Expected error %v, got %v", ErrTitleRequired, err)
	}

	// Test title over 100 characters
	_, err = NewPlace(strings.Repeat("t", 101), "desc", 120.0, 48.85, 2.35, ownerID)
	if err != ErrTitleTooLong {
		t.Errorf("Expected error %v, got %v", ErrTitleTooLong, err)
	}

	// Test non-positive price
	_, err = NewPlace("Cozy Loft", "desc", 0, 48.85, 2.35, ownerID)
	if err != ErrPriceNotPositive {
		t.Errorf("Expected error %v, got %v", ErrPriceNotPositive, err)
	}

	_, err = NewPlace("Cozy Loft", "desc", -10, 48.85, 2.35, ownerID)
	if err != ErrPriceNotPositive {
		t.Errorf("Expected error %v, got %v", ErrPriceNotPositive, err)
	}

	// Test missing owner
	_, err = NewPlace("Cozy Loft", "desc", 120.0, 48.85, 2.35, uuid.Nil)
	if err != ErrOwnerRequired {
		t.Errorf("Expected error %v, got %v", ErrOwnerRequired, err)
	}
}

func TestPlaceCoordinateBounds(t *testing.T) {
	t.Parallel()
	ownerID := uuid.New()

	// Inclusive boundaries are accepted
	boundaries := []struct {
		lat, long float64
	}{
		{90, 0},
		{-90, 0},
		{0, 180},
		{0, -180},
		{90, 180},
		{-90, -180},
		{0, 0},
	}
	for _, b := range boundaries {
		if _, err := NewPlace("Edge", "desc", 50, b.lat, b.long, ownerID); err != nil {
			t.Errorf("Expected coordinates (%v, %v) to be valid, got %v", b.lat, b.long, err)
		}
	}

	// Just past the boundary is rejected
	_, err := NewPlace("Edge", "desc", 50, 90.0001, 0, ownerID)
	if err != ErrLatitudeOutOfRange {
		t.Errorf("Expected error %v, got %v", ErrLatitudeOutOfRange, err)
	}

	_, err = NewPlace("Edge", "desc", 50, -90.0001, 0, ownerID)
	if err != ErrLatitudeOutOfRange {
		t.Errorf("Expected error %v, got %v", ErrLatitudeOutOfRange, err)
	}

	_, err = NewPlace("Edge", "desc", 50, 0, 180.0001, ownerID)
	if err != ErrLongitudeOutOfRange {
		t.Errorf("Expected error %v, got %v", ErrLongitudeOutOfRange, err)
	}

	_, err = NewPlace("Edge", "desc", 50, 0, -180.0001, ownerID)
	if err != ErrLongitudeOutOfRange {
		t.Errorf("Expected error %v, got %v", ErrLongitudeOutOfRange, err)
	}
}

func TestPlaceApply(t *testing.T) {
	t.Parallel()
	place, err := NewPlace("Cozy Loft", "A loft downtown", 120.0, 48.85, 2.35, uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Partial update of scalars
	newPrice := 150.0
	if err := place.Apply(PlaceUpdate{Price: &newPrice}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if place.Price != 150.0 {
		t.Errorf("Expected price 150, got %v", place.Price)
	}
	if place.Title != "Cozy Loft" {
		t.Errorf("Expected title unchanged, got %s", place.Title)
	}

	// Invalid update leaves the receiver untouched, including valid
	// fields bundled in the same update
	badLat := 95.0
	newTitle := "Bright Loft"
	err = place.Apply(PlaceUpdate{Latitude: &badLat, Title: &newTitle})
	if err != ErrLatitudeOutOfRange {
		t.Errorf("Expected error %v, got %v", ErrLatitudeOutOfRange, err)
	}
	if place.Latitude != 48.85 {
		t.Errorf("Expected latitude unchanged after failed update, got %v", place.Latitude)
	}
	if place.Title != "Cozy Loft" {
		t.Errorf("Expected title unchanged after failed update, got %s", place.Title)
	}
}

func TestPlaceAddAmenity(t *testing.T) {
	t.Parallel()
	place, err := NewPlace("Cozy Loft", "desc", 120.0, 48.85, 2.35, uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	wifi := uuid.New()
	pool := uuid.New()

	place.AddAmenity(wifi)
	place.AddAmenity(pool)
	if len(place.AmenityIDs) != 2 {
		t.Fatalf("Expected 2 amenities, got %d", len(place.AmenityIDs))
	}

	// Duplicate attachment is a no-op
	stamp := place.UpdatedAt
	place.AddAmenity(wifi)
	if len(place.AmenityIDs) != 2 {
		t.Errorf("Expected duplicate attachment to be ignored, got %d amenities", len(place.AmenityIDs))
	}
	if !place.UpdatedAt.Equal(stamp) {
		t.Error("Expected no-op attachment to leave UpdatedAt unchanged")
	}

	// Order is preserved
	if place.AmenityIDs[0] != wifi || place.AmenityIDs[1] != pool {
		t.Error("Expected amenities in attachment order")
	}
}

func TestPlaceSetAmenities(t *testing.T) {
	t.Parallel()
	place, err := NewPlace("Cozy Loft", "desc", 120.0, 48.85, 2.35, uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	place.AddAmenity(uuid.New())

	a := uuid.New()
	b := uuid.New()
	place.SetAmenities([]uuid.UUID{a, b, a})

	if len(place.AmenityIDs) != 2 {
		t.Fatalf("Expected duplicates dropped, got %d amenities", len(place.AmenityIDs))
	}
	if place.AmenityIDs[0] != a || place.AmenityIDs[1] != b {
		t.Error("Expected replacement list in input order")
	}
}

func TestPlaceReviewIndex(t *testing.T) {
	t.Parallel()
	place, err := NewPlace("Cozy Loft", "desc", 120.0, 48.85, 2.35, uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	reviewID := uuid.New()
	place.AddReview(reviewID)
	place.AddReview(reviewID)
	if len(place.ReviewIDs) != 1 {
		t.Fatalf("Expected 1 review after duplicate add, got %d", len(place.ReviewIDs))
	}

	place.RemoveReview(reviewID)
	if len(place.ReviewIDs) != 0 {
		t.Errorf("Expected empty review index after removal, got %d", len(place.ReviewIDs))
	}

	// Removing an absent id is a no-op
	place.RemoveReview(uuid.New())
	if len(place.ReviewIDs) != 0 {
		t.Errorf("Expected review index to stay empty, got %d", len(place.ReviewIDs))
	}
}
