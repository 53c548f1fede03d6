package api

import (
	"time"

	"github.com/hbnb/hbnb-api/internal/domain"
)

// Request DTOs. Pointer fields distinguish "absent" from "zero" both for
// partial updates and for required numeric fields whose zero value is
// legitimate (latitude 0 is a valid coordinate).

// CreateUserRequest is the body for POST /api/v1/users.
type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name"  validate:"required,min=1,max=50"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"omitempty,min=8,max=72"`
	IsAdmin   bool   `json:"is_admin"`
}

// UpdateUserRequest is the body for PUT /api/v1/users/{id}.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"last_name"  validate:"omitempty,min=1,max=50"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	IsAdmin   *bool   `json:"is_admin"`
}

// CreateAmenityRequest is the body for POST /api/v1/amenities.
type CreateAmenityRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// UpdateAmenityRequest is the body for PUT /api/v1/amenities/{id}.
type UpdateAmenityRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=50"`
}

// CreatePlaceRequest is the body for POST /api/v1/places.
type CreatePlaceRequest struct {
	Title       string   `json:"title"       validate:"required,min=1,max=100"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"       validate:"required,gt=0"`
	Latitude    *float64 `json:"latitude"    validate:"required,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude"   validate:"required,gte=-180,lte=180"`
	OwnerID     string   `json:"owner_id"    validate:"required,uuid"`
	Amenities   []string `json:"amenities"   validate:"omitempty,dive,uuid"`
}

// UpdatePlaceRequest is the body for PUT /api/v1/places/{id}.
type UpdatePlaceRequest struct {
	Title       *string   `json:"title"       validate:"omitempty,min=1,max=100"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"       validate:"omitempty,gt=0"`
	Latitude    *float64  `json:"latitude"    validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64  `json:"longitude"   validate:"omitempty,gte=-180,lte=180"`
	OwnerID     *string   `json:"owner_id"    validate:"omitempty,uuid"`
	Amenities   *[]string `json:"amenities"   validate:"omitempty,dive,uuid"`
}

// CreateReviewRequest is the body for POST /api/v1/reviews.
type CreateReviewRequest struct {
	Text    string `json:"text"     validate:"required,min=1"`
	Rating  *int   `json:"rating"   validate:"required,min=1,max=5"`
	UserID  string `json:"user_id"  validate:"required,uuid"`
	PlaceID string `json:"place_id" validate:"required,uuid"`
}

// UpdateReviewRequest is the body for PUT /api/v1/reviews/{id}.
type UpdateReviewRequest struct {
	Text    *string `json:"text"     validate:"omitempty,min=1"`
	Rating  *int    `json:"rating"   validate:"omitempty,min=1,max=5"`
	UserID  *string `json:"user_id"  validate:"omitempty,uuid"`
	PlaceID *string `json:"place_id" validate:"omitempty,uuid"`
}

// LoginRequest is the body for POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs.

// UserResponse is the representation of a user. The password hash is
// never included.
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AmenityResponse is the representation of an amenity.
type AmenityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlaceResponse is the representation of a place. Cross-entity fields
// are id references.
type PlaceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OwnerID     string    `json:"owner_id"`
	Amenities   []string  `json:"amenities"`
	Reviews     []string  `json:"reviews"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReviewResponse is the representation of a review.
type ReviewResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    string    `json:"user_id"`
	PlaceID   string    `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse is the body returned by a successful login.
type AuthResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func amenityToResponse(amenity *domain.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:        amenity.ID.String(),
		Name:      amenity.Name,
		CreatedAt: amenity.CreatedAt,
		UpdatedAt: amenity.UpdatedAt,
	}
}

func placeToResponse(place *domain.Place) PlaceResponse {
	amenities := make([]string, 0, len(place.AmenityIDs))
	for _, id := range place.AmenityIDs {
		amenities = append(amenities, id.String())
	}
	reviews := make([]string, 0, len(place.ReviewIDs))
	for _, id := range place.ReviewIDs {
		reviews = append(reviews, id.String())
	}
	return PlaceResponse{
		ID:          place.ID.String(),
		Title:       place.Title,
		Description: place.Description,
		Price:       place.Price,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		OwnerID:     place.OwnerID.String(),
		Amenities:   amenities,
		Reviews:     reviews,
		CreatedAt:   place.CreatedAt,
		UpdatedAt:   place.UpdatedAt,
	}
}

func reviewToResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		Text:      review.Text,
		Rating:    review.Rating,
		UserID:    review.UserID.String(),
		PlaceID:   review.PlaceID.String(),
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
