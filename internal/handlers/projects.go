package handlers

import (
	"net/http"

	"mahrous.dev/internal/models"
	"mahrous.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// List handles GET /api/projects. Responses are cacheable for an hour,
// matching the service-side TTL.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]any{
			"error":    "Failed to fetch GitHub projects",
			"message":  err.Error(),
			"projects": []models.Project{},
		})
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	respondJSON(w, http.StatusOK, models.ProjectList{Projects: projects})
}
