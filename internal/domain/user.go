package domain

import (
	"regexp"
	"strings"
)

// User-specific validation errors
var (
	// ErrFirstNameRequired is returned when the first name is empty after trimming.
	ErrFirstNameRequired = NewValidationError("first_name", "is required", nil)

	// ErrFirstNameTooLong is returned when the first name exceeds 50 characters.
	ErrFirstNameTooLong = NewValidationError("first_name", "must be at most 50 characters", nil)

	// ErrLastNameRequired is returned when the last name is empty after trimming.
	ErrLastNameRequired = NewValidationError("last_name", "is required", nil)

	// ErrLastNameTooLong is returned when the last name exceeds 50 characters.
	ErrLastNameTooLong = NewValidationError("last_name", "must be at most 50 characters", nil)

	// ErrEmailRequired is returned when the email is empty.
	ErrEmailRequired = NewValidationError("email", "is required", nil)

	// ErrEmailInvalid is returned when the email is not in a valid format.
	ErrEmailInvalid = NewValidationError("email", "must be a valid email address", ErrInvalidEmail)
)

// emailPattern is a pragmatic RFC-like check: one @, no whitespace, and a
// dotted domain part. Full RFC 5322 parsing is out of scope here.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents a registered user of the HBnB application.
type User struct {
	Entity
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	IsAdmin        bool   `json:"is_admin"`
	HashedPassword string `json:"-"` // Never expose the password hash in JSON
}

// UserUpdate carries the optional fields of a partial user update.
// Nil pointers mean "leave unchanged".
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	IsAdmin   *bool
}

// NewUser creates a new User with a fresh identity.
// The caller is responsible for setting HashedPassword before storage;
// plaintext passwords never pass through the domain layer.
// Returns an error if validation fails.
func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	user := &User{
		Entity:    NewEntity(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		IsAdmin:   isAdmin,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks every field's rule. It is re-run on every mutation,
// not only at construction.
func (u *User) Validate() error {
	if err := u.validateEntity(); err != nil {
		return err
	}

	if strings.TrimSpace(u.FirstName) == "" {
		return ErrFirstNameRequired
	}
	if len(u.FirstName) > 50 {
		return ErrFirstNameTooLong
	}

	if strings.TrimSpace(u.LastName) == "" {
		return ErrLastNameRequired
	}
	if len(u.LastName) > 50 {
		return ErrLastNameTooLong
	}

	if strings.TrimSpace(u.Email) == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(strings.TrimSpace(u.Email)) {
		return ErrEmailInvalid
	}

	return nil
}

// Apply sets the fields present in the update, validates the result on a
// copy, and commits only if validation passes. The receiver is untouched
// on failure.
func (u *User) Apply(update UserUpdate) error {
	next := *u
	if update.FirstName != nil {
		next.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		next.LastName = *update.LastName
	}
	if update.Email != nil {
		next.Email = *update.Email
	}
	if update.IsAdmin != nil {
		next.IsAdmin = *update.IsAdmin
	}

	if err := next.Validate(); err != nil {
		return err
	}

	next.Touch()
	*u = next
	return nil
}
