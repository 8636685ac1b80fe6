package handlers

import (
	"net/http"

	"mahrous.dev/internal/config"
)

// HealthHandler reports which optional configuration values are present.
// Only booleans; never the values themselves.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Status handles GET /api/health.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"ok": true,
		"env": map[string]bool{
			"GITHUB_USERNAME":    !h.cfg.UsernameDefault,
			"GITHUB_TOKEN":       h.cfg.GitHubToken != "",
			"RESEND_API_KEY":     h.cfg.ResendAPIKey != "",
			"CONTACT_TO_EMAIL":   h.cfg.ContactToEmail != "",
			"CONTACT_FROM_EMAIL": h.cfg.ContactFromEmail != "",
			"DRY_RUN":            h.cfg.DryRun,
		},
	})
}
