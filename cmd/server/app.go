package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hbnb/hbnb-api/internal/config"
	"github.com/hbnb/hbnb-api/internal/platform/memory"
	"github.com/hbnb/hbnb-api/internal/platform/metrics"
	"github.com/hbnb/hbnb-api/internal/service"
	"github.com/hbnb/hbnb-api/internal/service/auth"
	"github.com/hbnb/hbnb-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure consistent wiring between the stores, the facade
// and the HTTP handlers.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	amenityStore store.AmenityStore
	placeStore   store.PlaceStore
	reviewStore  store.ReviewStore

	// Services
	jwtService auth.JWTService
	hasher     *auth.BcryptHasher
	facade     *service.Facade

	// Observability
	metrics *metrics.Metrics
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the loaded configuration and a configured logger.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.hasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userStore = memory.NewUserStore()
	app.amenityStore = memory.NewAmenityStore()
	app.placeStore = memory.NewPlaceStore()
	app.reviewStore = memory.NewReviewStore()

	app.facade = service.NewFacade(
		app.userStore,
		app.amenityStore,
		app.placeStore,
		app.reviewStore,
		app.hasher,
		logger,
	)

	app.metrics = metrics.New()
	app.facade.SetEntityCounter(app.metrics)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
