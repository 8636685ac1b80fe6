package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"mahrous.dev/internal/config"
	"mahrous.dev/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		GitHubUsername: "someone",
		ContactToEmail: "owner@example.com",
		DryRun:         true,
		StaticPath:     "static",
		Bundled:        &models.ProjectList{},
	}
}

func TestRoutes(t *testing.T) {
	router := SetupRoutes(testConfig())

	cases := map[string]struct {
		method string
		path   string
		status int
	}{
		"health":             {http.MethodGet, "/api/health", http.StatusOK},
		"contact preflight":  {http.MethodOptions, "/api/contact", http.StatusNoContent},
		"unknown route":      {http.MethodGet, "/api/nope", http.StatusNotFound},
		"contact wrong verb": {http.MethodGet, "/api/contact", http.StatusMethodNotAllowed},
	}
	for name, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, tc.status, rec.Code, name)
	}
}
