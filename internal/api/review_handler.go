package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/hbnb/hbnb-api/internal/api/shared"
	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/service"
)

// ReviewHandler handles review-related HTTP requests.
type ReviewHandler struct {
	facade    *service.Facade
	validator *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(facade *service.Facade) *ReviewHandler {
	return &ReviewHandler{
		facade:    facade,
		validator: validator.New(),
	}
}

// CreateReview handles POST /api/v1/reviews.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user_id")
		return
	}
	placeID, err := uuid.Parse(req.PlaceID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid place_id")
		return
	}

	review, err := h.facade.CreateReview(r.Context(), service.CreateReviewInput{
		Text:    req.Text,
		Rating:  *req.Rating,
		UserID:  userID,
		PlaceID: placeID,
	})
	if err != nil {
		handleFacadeError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, reviewToResponse(review))
}

// ListReviews handles GET /api/v1/reviews.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.facade.ListReviews(r.Context())
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

// GetReview handles GET /api/v1/reviews/{id}.
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	review, err := h.facade.GetReview(r.Context(), id)
	if err != nil {
		handleFacadeError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewToResponse(review))
}

// UpdateReview handles PUT /api/v1/reviews/{id}.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	var req UpdateReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	update := domain.ReviewUpdate{
		Text:   req.Text,
		Rating: req.Rating,
	}
	if req.UserID != nil {
		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user_id")
			return
		}
		update.UserID = &userID
	}
	if req.PlaceID != nil {
		placeID, err := uuid.Parse(*req.PlaceID)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid place_id")
			return
		}
		update.PlaceID = &placeID
	}

	review, err := h.facade.UpdateReview(r.Context(), id, update)
	if err != nil {
		handleFacadeError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewToResponse(review))
}

// DeleteReview handles DELETE /api/v1/reviews/{id}.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.facade.DeleteReview(r.Context(), id); err != nil {
		handleFacadeError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": "Review deleted successfully"})
}
