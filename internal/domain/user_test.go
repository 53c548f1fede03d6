package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	t.Parallel()
	// Test valid user creation
	user, err := NewUser("Ann", "Lee", "ann@example.com", false)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.FirstName != "Ann" {
		t.Errorf("Expected first name Ann, got %s", user.FirstName)
	}

	if user.Email != "ann@example.com" {
		t.Errorf("Expected email ann@example.com, got %s", user.Email)
	}

	if user.IsAdmin {
		t.Error("Expected IsAdmin to be false")
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test missing first name
	_, err = NewUser("", "Lee", "ann@example.com", false)
	if err != ErrFirstNameRequired {
		t.Errorf("Expected error %v, got %v", ErrFirstNameRequired, err)
	}

	// Test missing last name
	_, err = NewUser("Ann", "   ", "ann@example.com", false)
	if err != ErrLastNameRequired {
		t.Errorf("Expected error %v, got %v", ErrLastNameRequired, err)
	}

	// Test missing email
	_, err = NewUser("Ann", "Lee", "", false)
	if err != ErrEmailRequired {
		t.Errorf("Expected error %v, got %v", ErrEmailRequired, err)
	}

	// Test malformed email
	_, err = NewUser("Ann", "Lee", "not-an-email", false)
	if err != ErrEmailInvalid {
		t.Errorf("Expected error %v, got %v", ErrEmailInvalid, err)
	}
	if !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("Expected error to match ErrInvalidEmail, got %v", err)
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected error to match ErrValidation, got %v", err)
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()
	validUser := User{
		Entity:    NewEntity(),
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
	}

	// Test valid user
	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test missing ID
	invalidUser := validUser
	invalidUser.ID = uuid.Nil
	if err := invalidUser.Validate(); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Expected error matching ErrInvalidID, got %v", err)
	}

	// Test first name over 50 characters
	invalidUser = validUser
	invalidUser.FirstName = strings.Repeat("a", 51)
	if err := invalidUser.Validate(); err != ErrFirstNameTooLong {
		t.Errorf("Expected error %v, got %v", ErrFirstNameTooLong, err)
	}

	// Test last name over 50 characters
	invalidUser = validUser
	invalidUser.LastName = strings.Repeat("b", 51)
	if err := invalidUser.Validate(); err != ErrLastNameTooLong {
		t.Errorf("Expected error %v, got %v", ErrLastNameTooLong, err)
	}

	// Exactly 50 characters is still valid
	boundaryUser := validUser
	boundaryUser.FirstName = strings.Repeat("a", 50)
	if err := boundaryUser.Validate(); err != nil {
		t.Errorf("Expected no error for 50-character first name, got %v", err)
	}

	// Email with surrounding whitespace trims clean
	trimUser := validUser
	trimUser.Email = "  ann@example.com  "
	if err := trimUser.Validate(); err != nil {
		t.Errorf("Expected no error for padded email, got %v", err)
	}
}

func TestUserApply(t *testing.T) {
	t.Parallel()
	user, err := NewUser("Ann", "Lee", "ann@example.com", false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	before := user.UpdatedAt

	// Partial update leaves omitted fields unchanged
	newFirst := "Anna"
	if err := user.Apply(UserUpdate{FirstName: &newFirst}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.FirstName != "Anna" {
		t.Errorf("Expected first name Anna, got %s", user.FirstName)
	}
	if user.LastName != "Lee" {
		t.Errorf("Expected last name unchanged, got %s", user.LastName)
	}
	if !user.UpdatedAt.After(before) && !user.UpdatedAt.Equal(before) {
		t.Error("Expected UpdatedAt to be refreshed")
	}

	// Invalid update leaves the receiver untouched
	badEmail := "not-an-email"
	goodLast := "Chen"
	err = user.Apply(UserUpdate{Email: &badEmail, LastName: &goodLast})
	if err != ErrEmailInvalid {
		t.Errorf("Expected error %v, got %v", ErrEmailInvalid, err)
	}
	if user.Email != "ann@example.com" {
		t.Errorf("Expected email unchanged after failed update, got %s", user.Email)
	}
	if user.LastName != "Lee" {
		t.Errorf("Expected last name unchanged after failed update, got %s", user.LastName)
	}

	// Admin flag can be flipped
	admin := true
	if err := user.Apply(UserUpdate{IsAdmin: &admin}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !user.IsAdmin {
		t.Error("Expected IsAdmin to be true after update")
	}
}
