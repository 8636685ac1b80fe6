package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"mahrous.dev/internal/models"
)

const defaultCacheTTL = time.Hour

// Config holds all application configuration
type Config struct {
	ServerAddr string
	StaticPath string

	GitHubUsername  string
	UsernameDefault bool
	GitHubToken     string
	ManifestURL     string
	CacheTTL        time.Duration

	ResendAPIKey     string
	ContactToEmail   string
	ContactFromEmail string
	DryRun           bool

	// Bundled static project list, merged behind live data. Optional.
	Bundled *models.ProjectList
}

// Load reads .env (if present), the environment, and the optional
// bundled project list.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddr: os.Getenv("SERVER_ADDR"),
		StaticPath: os.Getenv("STATIC_PATH"),

		GitHubUsername: os.Getenv("GITHUB_USERNAME"),
		GitHubToken:    os.Getenv("GITHUB_TOKEN"),
		ManifestURL:    os.Getenv("PROJECTS_MANIFEST_URL"),
		CacheTTL:       defaultCacheTTL,

		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		ContactToEmail:   os.Getenv("CONTACT_TO_EMAIL"),
		ContactFromEmail: os.Getenv("CONTACT_FROM_EMAIL"),
		DryRun:           boolEnv("DRY_RUN"),
	}

	if cfg.ServerAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.ServerAddr = ":" + port
		} else {
			cfg.ServerAddr = ":8080"
		}
	}
	if cfg.GitHubUsername == "" {
		cfg.GitHubUsername = "imahrous13"
		cfg.UsernameDefault = true
	}
	if cfg.ContactToEmail == "" {
		cfg.ContactToEmail = "imahrous13@gmail.com"
	}
	if cfg.ContactFromEmail == "" {
		cfg.ContactFromEmail = "Portfolio Contact <imahrous13@gmail.com>"
	}
	if cfg.StaticPath == "" {
		cfg.StaticPath = "static"
	}
	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.CacheTTL = d
		} else {
			slog.Warn("invalid CACHE_TTL, using default", "value", ttl, "default", defaultCacheTTL)
		}
	}

	cfg.Bundled = loadBundledProjects("data/projects.json")

	return cfg
}

// loadBundledProjects reads the static project list. The file is an
// optional merge source, so a missing or unreadable file only warns.
func loadBundledProjects(path string) *models.ProjectList {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("could not read bundled project list", "path", path, "error", err)
		}
		return &models.ProjectList{}
	}

	var projects models.ProjectList
	if err := json.Unmarshal(data, &projects); err != nil {
		slog.Warn("could not parse bundled project list", "path", path, "error", err)
		return &models.ProjectList{}
	}
	return &projects
}

func boolEnv(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "true" || v == "1"
}
