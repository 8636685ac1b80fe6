package projects

import (
	"sort"
	"strings"
	"time"

	"mahrous.dev/internal/models"
)

// MergeSources are the three inputs to a merge, in precedence order.
// Live data wins outright; the bundled list only fills gaps on keys it
// shares with live data; manifest entries are only ever additive.
type MergeSources struct {
	Live     []models.Project
	Bundled  []models.Project
	Manifest []models.Project
}

// Merge combines the three sources into one de-duplicated collection,
// keyed by lowercased GitHub URL (or lowercased title when the URL is
// absent or a placeholder), sorted most-recently-updated first with
// undated entries last. Precedence is encoded here explicitly rather
// than by insertion order.
func Merge(src MergeSources) []models.Project {
	index := map[string]int{}
	var out []models.Project

	for _, p := range src.Live {
		key := mergeKey(p)
		if key == "" {
			continue
		}
		if _, exists := index[key]; exists {
			continue
		}
		index[key] = len(out)
		out = append(out, p)
	}

	for _, p := range src.Bundled {
		key := mergeKey(p)
		if key == "" {
			continue
		}
		if i, exists := index[key]; exists {
			fillGaps(&out[i], p)
			continue
		}
		index[key] = len(out)
		out = append(out, p)
	}

	for _, p := range src.Manifest {
		key := mergeKey(p)
		if key == "" {
			continue
		}
		if _, exists := index[key]; exists {
			continue
		}
		index[key] = len(out)
		out = append(out, p)
	}

	sortProjects(out)
	return out
}

func mergeKey(p models.Project) string {
	u := strings.TrimSpace(strings.ToLower(p.GitHub))
	if u != "" && u != "#" {
		return u
	}
	return strings.TrimSpace(strings.ToLower(p.Title))
}

// fillGaps supplements dst with fields from src without overriding
// anything live data already provides. Stacks are unioned; the
// description is only substituted when dst has none and src's is a real
// one.
func fillGaps(dst *models.Project, src models.Project) {
	if dst.Description == "" && src.Description != "" {
		dst.Description = src.Description
	}
	if dst.Image == "" || dst.Image == PlaceholderImage {
		if src.Image != "" {
			dst.Image = src.Image
		}
	}
	if dst.Demo == "" || dst.Demo == dst.GitHub {
		if src.Demo != "" {
			dst.Demo = src.Demo
		}
	}
	if dst.Category == "" {
		dst.Category = src.Category
	}
	if dst.UpdatedAt == "" {
		dst.UpdatedAt = src.UpdatedAt
	}
	if src.Featured {
		dst.Featured = true
	}

	seen := map[string]bool{}
	for _, tag := range dst.Stack {
		seen[strings.ToLower(tag)] = true
	}
	for _, tag := range src.Stack {
		if tag != "" && tag != PlaceholderStack && !seen[strings.ToLower(tag)] {
			seen[strings.ToLower(tag)] = true
			dst.Stack = append(dst.Stack, tag)
		}
	}
}

// sortProjects orders dated entries before undated ones, and dated
// entries by timestamp descending. Stable with respect to input order.
func sortProjects(list []models.Project) {
	sort.SliceStable(list, func(i, j int) bool {
		ti, oki := parseTime(list[i].UpdatedAt)
		tj, okj := parseTime(list[j].UpdatedAt)
		if oki != okj {
			return oki
		}
		return ti.After(tj)
	})
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
