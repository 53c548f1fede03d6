package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hbnb/hbnb-api/internal/api/shared"
	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/service"
)

// AmenityHandler handles amenity-related HTTP requests.
type AmenityHandler struct {
	facade    *service.Facade
	validator *validator.Validate
}

// NewAmenityHandler creates a new AmenityHandler.
func NewAmenityHandler(facade *service.Facade) *AmenityHandler {
	return &AmenityHandler{
		facade:    facade,
		validator: validator.New(),
	}
}

// CreateAmenity handles POST /api/v1/amenities.
func (h *AmenityHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	var req CreateAmenityRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	amenity, err := h.facade.CreateAmenity(r.Context(), req.Name)
	if err != nil {
		handleFacadeError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, amenityToResponse(amenity))
}

// ListAmenities handles GET /api/v1/amenities.
func (h *AmenityHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.facade.ListAmenities(r.Context())
	if err != nil {
		handleFacadeError(w, r, err)
		return
	}

	responses := make([]AmenityResponse, 0, len(amenities))
	for _, amenity := range amenities {
		responses = append(responses, amenityToResponse(amenity))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetAmenity handles GET /api/v1/amenities/{id}.
func (h *AmenityHandler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	amenity, err := h.facade.GetAmenity(r.Context(), id)
	if err != nil {
		handleFacadeError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, amenityToResponse(amenity))
}

// UpdateAmenity handles PUT /api/v1/amenities/{id}.
func (h *AmenityHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	var req UpdateAmenityRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	amenity, err := h.facade.UpdateAmenity(r.Context(), id, domain.AmenityUpdate{Name: req.Name})
	if err != nil {
		handleFacadeError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, amenityToResponse(amenity))
}
