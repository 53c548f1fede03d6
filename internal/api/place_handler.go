package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/hbnb/hbnb-api/internal/api/shared"
	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/service"
)

// PlaceHandler handles place-related HTTP requests.
type PlaceHandler struct {
	facade    *service.Facade
	validator *validator.Validate
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(facade *service.Facade) *PlaceHandler {
	return &PlaceHandler{
		facade:    facade,
		validator: validator.New(),
	}
}

// CreatePlace handles POST /api/v1/places.
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var req CreatePlaceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid owner_id")
		return
	}
	amenityIDs, err := parseUUIDs(req.Amenities)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid amenity id")
		return
	}

	place, err := h.facade.CreatePlace(r.Context(), service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		OwnerID:     ownerID,
		AmenityIDs:  amenityIDs,
	})
	if err != nil {
		handleFacadeError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, placeToResponse(place))
}

// ListPlaces handles GET /api/v1/places.
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.facade.ListPlaces(r.Context())
	if err != nil {
		handleFacadeError(w, r, err)
		return
	}

	responses := make([]PlaceResponse, 0, len(places))
	for _, place := range places {
		responses = append(responses, placeToResponse(place))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetPlace handles GET /api/v1/places/{id}.
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	place, err := h.facade.GetPlace(r.Context(), id)
	if err != nil {
		handleFacadeError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, placeToResponse(place))
}

// UpdatePlace handles PUT /api/v1/places/{id}.
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	var req UpdatePlaceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	input := UpdatePlaceInputFromRequest(req)
	place, err := h.facade.UpdatePlace(r.Context(), id, input)
	if err != nil {
		handleFacadeError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, placeToResponse(place))
}

// GetPlaceReviews handles GET /api/v1/places/{id}/reviews.
func (h *PlaceHandler) GetPlaceReviews(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	reviews, err := h.facade.GetReviewsByPlace(r.Context(), id)
	if err != nil {
		handleFacadeError(w, r, err)
		return
	}

	responses := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, reviewToResponse(review))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// UpdatePlaceInputFromRequest converts the update DTO into the facade's
// input type. The request was validator-checked, so the uuid parses
// cannot fail here except through a race with validation rules; a parse
// error surfaces as a nil (absent) field.
func UpdatePlaceInputFromRequest(req UpdatePlaceRequest) service.UpdatePlaceInput {
	input := service.UpdatePlaceInput{
		PlaceUpdate: domain.PlaceUpdate{
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
		},
	}
	if req.OwnerID != nil {
		if ownerID, err := uuid.Parse(*req.OwnerID); err == nil {
			input.OwnerID = &ownerID
		}
	}
	if req.Amenities != nil {
		if amenityIDs, err := parseUUIDs(*req.Amenities); err == nil {
			input.AmenityIDs = &amenityIDs
		}
	}
	return input
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
