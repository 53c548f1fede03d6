package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hbnb/hbnb-api/internal/api/shared"
	"github.com/hbnb/hbnb-api/internal/service"
	"github.com/hbnb/hbnb-api/internal/service/auth"
	"github.com/hbnb/hbnb-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	facade     *service.Facade
	jwtService auth.JWTService
	verifier   auth.PasswordVerifier
	validator  *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	facade *service.Facade,
	jwtService auth.JWTService,
	verifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		facade:     facade,
		jwtService: jwtService,
		verifier:   verifier,
		validator:  validator.New(),
	}
}

// Login handles POST /api/v1/auth/login. A valid email/password pair
// yields a signed access token carrying the user's id and admin flag.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.facade.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same response as a wrong password: don't reveal which half failed.
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("failed to get user by email", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if user.HashedPassword == "" {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := h.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.IsAdmin)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID: user.ID.String(),
		Token:  token,
	})
}
