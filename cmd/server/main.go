// Package main implements the entry point for the placez API server,
// a REST backend for sharing user-curated places with geocoded
// addresses and image uploads.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/placez/placez-api/internal/config"
	"github.com/placez/placez-api/internal/platform/logger"
)

func main() {
	// A missing .env file is fine; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, connects to the
// database, and wires the application dependencies.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to wire application: %w", err)
	}

	return app, nil
}
