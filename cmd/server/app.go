package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apimiddleware "github.com/placez/placez-api/internal/api/middleware"
	"github.com/placez/placez-api/internal/config"
	"github.com/placez/placez-api/internal/geocode"
	"github.com/placez/placez-api/internal/platform/mongodb"
	"github.com/placez/placez-api/internal/service"
	"github.com/placez/placez-api/internal/service/auth"
	"github.com/placez/placez-api/internal/upload"
)

// application holds the wired dependencies shared by the router and the
// server lifecycle.
type application struct {
	config *config.Config
	logger *slog.Logger

	db           *mongodb.DB
	jwtService   auth.JWTService
	userService  *service.UserService
	placeService *service.PlaceService
	uploadStore  *upload.Store
	loginLimiter *apimiddleware.LoginRateLimiter
}

// newApplication connects to MongoDB and builds the service graph.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	uploadStore, err := upload.NewStore(cfg.Upload.Dir, cfg.Upload.MaxBytes, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload store: %w", err)
	}

	userStore := mongodb.NewUserStore(db)
	placeStore := mongodb.NewPlaceStore(db)
	geocoder := geocode.NewGoogleClient(cfg.Geocode, log)

	userService := service.NewUserService(
		userStore,
		jwtService,
		auth.NewBcryptHasher(),
		auth.NewBcryptVerifier(),
		log,
	)
	placeService := service.NewPlaceService(
		placeStore,
		userStore,
		db,
		geocoder,
		uploadStore,
		log,
	)

	return &application{
		config:       cfg,
		logger:       log,
		db:           db,
		jwtService:   jwtService,
		userService:  userService,
		placeService: placeService,
		uploadStore:  uploadStore,
		loginLimiter: apimiddleware.NewLoginRateLimiter(apimiddleware.DefaultLoginRateLimiterConfig()),
	}, nil
}

// tokenLifetime returns the configured token lifetime as a duration.
func (app *application) tokenLifetime() time.Duration {
	return time.Duration(app.config.Auth.TokenLifetimeMinutes) * time.Minute
}

// cleanup releases resources during shutdown.
func (app *application) cleanup() {
	app.loginLimiter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.db.Close(ctx); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
	}
}
