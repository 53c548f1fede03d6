package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewAmenity(t *testing.T) {
	t.Parallel()
	amenity, err := NewAmenity("Wifi")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if amenity.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if amenity.Name != "Wifi" {
		t.Errorf("Expected name Wifi, got %s", amenity.Name)
	}

	if amenity.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test empty name
	_, err = NewAmenity("")
	if err != ErrAmenityNameRequired {
		t.Errorf("Expected error %v, got %v", ErrAmenityNameRequired, err)
	}

	// Test whitespace-only name
	_, err = NewAmenity("   ")
	if err != ErrAmenityNameRequired {
		t.Errorf("Expected error %v, got %v", ErrAmenityNameRequired, err)
	}

	// Test name over 50 characters
	_, err = NewAmenity(strings.Repeat("x", 51))
	if err != ErrAmenityNameTooLong {
		t.Errorf("Expected error %v, got %v", ErrAmenityNameTooLong, err)
	}

	// Exactly 50 characters is still valid
	if _, err := NewAmenity(strings.Repeat("x", 50)); err != nil {
		t.Errorf("Expected no error for 50-character name, got %v", err)
	}
}

func TestAmenityApply(t *testing.T) {
	t.Parallel()
	amenity, err := NewAmenity("Wifi")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	newName := "Air Conditioning"
	if err := amenity.Apply(AmenityUpdate{Name: &newName}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if amenity.Name != "Air Conditioning" {
		t.Errorf("Expected name Air Conditioning, got %s", amenity.Name)
	}

	// Invalid update leaves the receiver untouched
	empty := ""
	if err := amenity.Apply(AmenityUpdate{Name: &empty}); err != ErrAmenityNameRequired {
		t.Errorf("Expected error %v, got %v", ErrAmenityNameRequired, err)
	}
	if amenity.Name != "Air Conditioning" {
		t.Errorf("Expected name unchanged after failed update, got %s", amenity.Name)
	}

	// Empty update is a valid no-op on the fields
	if err := amenity.Apply(AmenityUpdate{}); err != nil {
		t.Errorf("Expected no error for empty update, got %v", err)
	}
}
