package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hbnb/hbnb-api/internal/api"
	apiMiddleware "github.com/hbnb/hbnb-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Reads are public; writes require a bearer token, except
// user registration and login which bootstrap the credential flow.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)
	r.Use(app.metrics.Middleware)

	authHandler := api.NewAuthHandler(app.facade, app.jwtService, app.hasher)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	userHandler := api.NewUserHandler(app.facade)
	amenityHandler := api.NewAmenityHandler(app.facade)
	placeHandler := api.NewPlaceHandler(app.facade)
	reviewHandler := api.NewReviewHandler(app.facade)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Public reads plus open user registration.
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

		// Mutations require authentication.
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

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
