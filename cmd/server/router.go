package main

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/placez/placez-api/internal/api"
	apimiddleware "github.com/placez/placez-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and
// middleware wired to the application's services.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.CORS(app.config.Server.AllowedOrigin))
	r.Use(apimiddleware.Trace)

	userHandler := api.NewUserHandler(app.userService, app.uploadStore, app.tokenLifetime(), app.logger)
	placeHandler := api.NewPlaceHandler(app.placeService, app.uploadStore, app.logger)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)
	csrf := apimiddleware.CSRF()

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/csrf-token", apimiddleware.CSRFTokenHandler())

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.With(app.loginLimiter.Limit).Post("/signup", userHandler.Signup)
			r.With(app.loginLimiter.Limit).Post("/login", userHandler.Login)
		})

		r.Route("/places", func(r chi.Router) {
			// Public reads
			r.Get("/{pid}", placeHandler.GetPlace)
			r.Get("/user/{uid}", placeHandler.ListPlacesByUser)

			// State-changing routes require a verified token and a
			// CSRF token.
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Use(csrf)
				r.Post("/", placeHandler.CreatePlace)
				r.Patch("/{pid}", placeHandler.UpdatePlace)
				r.Delete("/{pid}", placeHandler.DeletePlace)
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Uploaded images are served straight from disk.
	uploadsFS := http.StripPrefix("/"+filepath.ToSlash(app.uploadStore.Dir())+"/",
		http.FileServer(http.Dir(app.uploadStore.Dir())))
	r.Get("/"+filepath.ToSlash(app.uploadStore.Dir())+"/*", uploadsFS.ServeHTTP)

	// SPA hosting: serve the built front end when configured, falling
	// back to index.html for client-side routes.
	if app.config.Server.StaticDir != "" {
		r.NotFound(app.serveSPA)
	}

	return r
}

// serveSPA serves files from the static directory, answering unknown
// paths with index.html so the front-end router can take over.
func (app *application) serveSPA(w http.ResponseWriter, r *http.Request) {
	staticDir := app.config.Server.StaticDir
	requested := filepath.Join(staticDir, filepath.Clean("/"+r.URL.Path))

	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		http.ServeFile(w, r, requested)
		return
	}

	http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
}
