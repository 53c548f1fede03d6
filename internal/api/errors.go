// Package api implements the HTTP handlers over the service facade.
package api

import (
	"errors"
	"net/http"

	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/service"
	"github.com/hbnb/hbnb-api/internal/service/auth"
	"github.com/hbnb/hbnb-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. This
// is the only place transport codes are decided; the core never sees
// them.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Absence and unresolved references
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, service.ErrReferenceNotFound):
		return http.StatusNotFound

	// Uniqueness conflicts
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Validation failures
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrImmutableOwner):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error without leaking internal detail.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, service.ErrOwnerNotFound):
		return "Owner not found"
	case errors.Is(err, service.ErrAmenityRefNotFound):
		return "Amenity not found"
	case errors.Is(err, service.ErrReviewUserNotFound):
		return "User not found"
	case errors.Is(err, service.ErrReviewPlaceNotFound):
		return "Place not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrAmenityNotFound):
		return "Amenity not found"
	case errors.Is(err, store.ErrPlaceNotFound):
		return "Place not found"
	case errors.Is(err, store.ErrReviewNotFound):
		return "Review not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"
	case errors.Is(err, store.ErrAmenityNameExists):
		return "Amenity name already exists"
	case errors.Is(err, store.ErrDuplicate):
		return "Entity already exists"

	case errors.Is(err, service.ErrImmutableOwner):
		return "Place owner cannot be changed"

	case errors.Is(err, domain.ErrValidation):
		// Validation errors carry field-level messages that are safe to
		// show (e.g. "rating must be between 1 and 5").
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return vErr.Error()
		}
		return "Invalid input data"

	default:
		return "An unexpected error occurred"
	}
}

// handleFacadeError writes the mapped status and sanitized message for a
// facade error, logging the detail server-side.
func handleFacadeError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	respondError(w, r, status, GetSafeErrorMessage(err), err)
}
