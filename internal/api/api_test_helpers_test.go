package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apiMiddleware "github.com/hbnb/hbnb-api/internal/api/middleware"
	"github.com/hbnb/hbnb-api/internal/config"
	"github.com/hbnb/hbnb-api/internal/platform/memory"
	"github.com/hbnb/hbnb-api/internal/service"
	"github.com/hbnb/hbnb-api/internal/service/auth"
)

// testEnv wires the handlers onto a router the way the server does, over
// fresh in-memory stores.
type testEnv struct {
	router http.Handler
	facade *service.Facade
	jwt    auth.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	facade := service.NewFacade(
		memory.NewUserStore(),
		memory.NewAmenityStore(),
		memory.NewPlaceStore(),
		memory.NewReviewStore(),
		hasher,
		nil,
	)

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "0123456789abcdef0123456789abcdef",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	authHandler := NewAuthHandler(facade, jwtService, hasher)
	authMiddleware := apiMiddleware.NewAuthMiddleware(jwtService)
	userHandler := NewUserHandler(facade)
	amenityHandler := NewAmenityHandler(facade)
	placeHandler := NewPlaceHandler(facade)
	reviewHandler := NewReviewHandler(facade)

	r := chi.NewRouter()
	r.Use(apiMiddleware.Trace)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		r.Post("/users", userHandler.CreateUser)
		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{id}", userHandler.GetUser)
		r.Get("/amenities", amenityHandler.ListAmenities)
		r.Get("/amenities/{id}", amenityHandler.GetAmenity)
		r.Get("/places", placeHandler.ListPlaces)
		r.Get("/places/{id}", placeHandler.GetPlace)
		r.Get("/places/{id}/reviews", placeHandler.GetPlaceReviews)
		r.Get("/reviews", reviewHandler.ListReviews)
		r.Get("/reviews/{id}", reviewHandler.GetReview)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Put("/users/{id}", userHandler.UpdateUser)
			r.Post("/amenities", amenityHandler.CreateAmenity)
			r.Put("/amenities/{id}", amenityHandler.UpdateAmenity)
			r.Post("/places", placeHandler.CreatePlace)
			r.Put("/places/{id}", placeHandler.UpdatePlace)
			r.Post("/reviews", reviewHandler.CreateReview)
			r.Put("/reviews/{id}", reviewHandler.UpdateReview)
			r.Delete("/reviews/{id}", reviewHandler.DeleteReview)
		})
	})

	return &testEnv{router: r, facade: facade, jwt: jwtService}
}

// do performs a request against the test router. A non-empty token is
// sent as a bearer Authorization header.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// registerUser creates a user through the public registration endpoint.
func (e *testEnv) registerUser(t *testing.T, email, password string) UserResponse {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/v1/users", map[string]interface{}{
		"first_name": "Ann",
		"last_name":  "Lee",
		"email":      email,
		"password":   password,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user UserResponse
	decodeBody(t, rec, &user)
	return user
}

// login exchanges credentials for a bearer token.
func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AuthResponse
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// registerAndLogin is the common fixture: a registered user plus a token.
func (e *testEnv) registerAndLogin(t *testing.T, email string) (UserResponse, string) {
	t.Helper()
	user := e.registerUser(t, email, "p4ssw0rd!")
	return user, e.login(t, email, "p4ssw0rd!")
}
