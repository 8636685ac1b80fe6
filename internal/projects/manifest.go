package projects

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"mahrous.dev/internal/models"
)

// FetchManifest downloads the optional hand-curated manifest, a JSON
// document of shape {"projects": [...]}. Entries are tolerant about
// field names: the source URL may be "repo" or "github" and the
// description may be "description" or "desc".
func FetchManifest(ctx context.Context, client *http.Client, urlStr string) ([]models.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching manifest: unexpected status code %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return ParseManifest(body)
}

// ParseManifest reads manifest bytes into Projects. Entries without a
// title and source URL are dropped.
func ParseManifest(body []byte) ([]models.Project, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("manifest is not valid JSON")
	}
	entries := gjson.GetBytes(body, "projects")
	if !entries.IsArray() {
		return nil, fmt.Errorf("manifest has no 'projects' array")
	}

	var out []models.Project
	entries.ForEach(func(_, item gjson.Result) bool {
		p := models.Project{
			Title:       item.Get("title").String(),
			Description: firstNonEmpty(item.Get("description").String(), item.Get("desc").String()),
			Image:       item.Get("image").String(),
			GitHub:      firstNonEmpty(item.Get("repo").String(), item.Get("github").String()),
			Demo:        item.Get("demo").String(),
			Category:    item.Get("category").String(),
			UpdatedAt:   item.Get("updatedAt").String(),
			Featured:    item.Get("featured").Bool(),
		}
		for _, tag := range item.Get("stack").Array() {
			if s := tag.String(); s != "" {
				p.Stack = append(p.Stack, s)
			}
		}
		if p.Title != "" || p.GitHub != "" {
			out = append(out, p)
		}
		return true
	})
	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
