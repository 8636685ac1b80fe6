package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"mahrous.dev/internal/config"
	"mahrous.dev/internal/github"
	"mahrous.dev/internal/models"
	"mahrous.dev/internal/projects"
)

// ProjectService produces the merged project listing: live GitHub data
// first, the bundled static list filling gaps, the optional remote
// manifest adding extras. Results are cached with a TTL so repeated page
// loads within the cache window cost no upstream calls, and concurrent
// cold-cache requests are coalesced into a single aggregation.
type ProjectService struct {
	gh          *github.Client
	aggregator  *projects.Aggregator
	username    string
	manifestURL string
	bundled     []models.Project

	httpClient *http.Client
	cache      *gocache.Cache
	group      singleflight.Group
}

// NewProjectService creates a new ProjectService
func NewProjectService(cfg *config.Config) *ProjectService {
	gh := github.NewClient(cfg.GitHubToken)
	var bundled []models.Project
	if cfg.Bundled != nil {
		bundled = cfg.Bundled.Projects
	}
	return &ProjectService{
		gh:          gh,
		aggregator:  projects.NewAggregator(gh),
		username:    cfg.GitHubUsername,
		manifestURL: cfg.ManifestURL,
		bundled:     bundled,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		cache:       gocache.New(cfg.CacheTTL, 10*time.Minute),
	}
}

// List returns the merged project collection, serving from cache when
// fresh. An error is returned only when every source came up empty; any
// single source failing just degrades to the remaining ones.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	if cached, ok := s.cache.Get(s.username); ok {
		return cached.([]models.Project), nil
	}

	merged, err, _ := s.group.Do(s.username, func() (any, error) {
		list, err := s.build(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.SetDefault(s.username, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return merged.([]models.Project), nil
}

func (s *ProjectService) build(ctx context.Context) ([]models.Project, error) {
	var src projects.MergeSources
	var liveErr error

	repos, err := s.gh.ListRepos(ctx, s.username)
	if err != nil {
		liveErr = err
		slog.Warn("repository listing failed, degrading to curated sources",
			"username", s.username, "error", err)
	} else {
		slog.Info("fetched repositories", "username", s.username, "count", len(repos))
		src.Live = s.aggregator.Aggregate(ctx, s.username, repos)
	}

	src.Bundled = s.bundled

	if s.manifestURL != "" {
		manifest, err := projects.FetchManifest(ctx, s.httpClient, s.manifestURL)
		if err != nil {
			slog.Warn("manifest fetch failed, skipping", "url", s.manifestURL, "error", err)
		} else {
			src.Manifest = manifest
		}
	}

	merged := projects.Merge(src)
	if len(merged) == 0 && liveErr != nil {
		return nil, fmt.Errorf("fetching GitHub projects: %w", liveErr)
	}
	return merged, nil
}
