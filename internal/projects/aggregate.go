// Package projects turns raw GitHub repository metadata into the
// normalized project records the portfolio displays, and merges them with
// curated sources.
package projects

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"mahrous.dev/internal/github"
	"mahrous.dev/internal/models"
)

const (
	descriptionMaxLen = 500

	// below this the repository's own description is considered too thin
	// and a README lookup is attempted.
	minOwnDescriptionLen = 30

	// README summaries shorter than this are discarded in favour of the
	// templated fallback.
	minReadmeSummaryLen = 50

	// final descriptions shorter than this are replaced with the
	// templated fallback.
	minFinalDescriptionLen = 20

	defaultReadmeTimeout     = 3 * time.Second
	defaultReadmeConcurrency = 10

	// PlaceholderStack keeps the stack invariant: it is never empty.
	PlaceholderStack = "Various Technologies"

	// PlaceholderImage is used when a repository has no owner avatar.
	PlaceholderImage = "/api/placeholder/600/400"
)

// generic topics that say nothing about the tech stack.
var topicStoplist = map[string]bool{
	"portfolio": true,
	"project":   true,
	"demo":      true,
	"example":   true,
	"sample":    true,
	"test":      true,
	"tutorial":  true,
	"learning":  true,
}

// ReadmeFetcher fetches raw README content for one repository.
type ReadmeFetcher interface {
	Readme(ctx context.Context, owner, repo string) (string, error)
}

// Aggregator normalizes fetched repositories into Projects. README
// lookups run concurrently with a bounded limit and an independent
// timeout each; a failed or slow lookup degrades that one repository to
// the templated description, never the whole aggregation.
type Aggregator struct {
	readmes       ReadmeFetcher
	readmeTimeout time.Duration
	concurrency   int
}

func NewAggregator(readmes ReadmeFetcher) *Aggregator {
	return &Aggregator{
		readmes:       readmes,
		readmeTimeout: defaultReadmeTimeout,
		concurrency:   defaultReadmeConcurrency,
	}
}

// Aggregate builds one Project per repository and returns them sorted by
// last-updated time, most recent first. Ties keep input order.
func (a *Aggregator) Aggregate(ctx context.Context, owner string, repos []github.Repo) []models.Project {
	out := make([]models.Project, len(repos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, repo := range repos {
		i, repo := i, repo
		g.Go(func() error {
			out[i] = a.buildProject(gctx, owner, repo)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, only degrade

	sortProjects(out)
	return out
}

func (a *Aggregator) buildProject(ctx context.Context, owner string, repo github.Repo) models.Project {
	title := FormatTitle(repo.Name)
	stack := stackTags(repo)
	category := Classify(repo.Name, repo.Description, repo.Topics, repo.Language)

	description := strings.TrimSpace(repo.Description)
	if len(description) < minOwnDescriptionLen {
		if summary, ok := a.readmeSummary(ctx, owner, repo.Name); ok {
			description = summary
		}
	}
	if len(description) < minFinalDescriptionLen {
		description = fmt.Sprintf("%s - A %s project built with %s.",
			title, projectPhrase(category), strings.Join(stack[:min(3, len(stack))], ", "))
	}
	if len(description) > descriptionMaxLen {
		description = truncateEllipsis(description, descriptionMaxLen)
	}

	image := repo.Owner.AvatarURL
	if image == "" {
		image = PlaceholderImage
	}
	demo := repo.Homepage
	if demo == "" {
		demo = repo.HTMLURL
	}
	topics := repo.Topics
	if topics == nil {
		topics = []string{}
	}

	return models.Project{
		Title:       title,
		Description: description,
		Image:       image,
		Stack:       stack,
		GitHub:      repo.HTMLURL,
		Demo:        demo,
		Category:    string(category),
		UpdatedAt:   repo.UpdatedAt,
		Stars:       repo.StargazersCount,
		Forks:       repo.ForksCount,
		Topics:      topics,
	}
}

func (a *Aggregator) readmeSummary(ctx context.Context, owner, name string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, a.readmeTimeout)
	defer cancel()

	content, err := a.readmes.Readme(ctx, owner, name)
	if err != nil {
		slog.Debug("readme lookup failed, falling back", "repo", name, "error", err)
		return "", false
	}
	summary, ok := SummarizeReadme(content)
	if !ok || len(summary) <= minReadmeSummaryLen {
		return "", false
	}
	return summary, true
}

// stackTags is the primary language followed by non-generic topics,
// deduplicated, insertion order preserved. Never empty.
func stackTags(repo github.Repo) []string {
	seen := map[string]bool{}
	var stack []string
	add := func(tag string) {
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		stack = append(stack, tag)
	}

	add(repo.Language)
	for _, topic := range repo.Topics {
		if !topicStoplist[strings.ToLower(topic)] {
			add(topic)
		}
	}

	if len(stack) == 0 {
		stack = []string{PlaceholderStack}
	}
	return stack
}
