package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"mahrous.dev/internal/config"
	"mahrous.dev/internal/middleware"
	"mahrous.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	// Initialize services
	projectService := services.NewProjectService(cfg)
	contactService := services.NewContactService(cfg)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	contactHandler := NewContactHandler(contactService)
	healthHandler := NewHealthHandler(cfg)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Project endpoints ("/github-projects" is the path the
		// existing frontend fetches)
		r.Get("/projects", projectHandler.List)
		r.Get("/github-projects", projectHandler.List)

		// Contact endpoint
		r.Options("/contact", contactHandler.Preflight)
		r.Post("/contact", contactHandler.Submit)

		// Health check
		r.Get("/health", healthHandler.Status)
	})

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticPath))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Serve index.html at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticPath, "index.html"))
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
