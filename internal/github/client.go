// Package github is a thin client for the GitHub REST API, covering the
// two endpoints the portfolio needs: a user's repository listing and a
// repository's README content.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.github.com"
	userAgent      = "Portfolio-Website"

	// GitHub caps per_page at 100. A page shorter than this means the
	// listing is exhausted.
	pageSize = 100
)

// Repo is one repository as returned by the listing API.
type Repo struct {
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Description     string   `json:"description"`
	Language        string   `json:"language"`
	Topics          []string `json:"topics"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	Fork            bool     `json:"fork"`
	Archived        bool     `json:"archived"`
	UpdatedAt       string   `json:"updated_at"`
	HTMLURL         string   `json:"html_url"`
	Homepage        string   `json:"homepage"`
	Owner           struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"owner"`
}

// StatusError reports a non-200 response from the API.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status code %d: %s", e.URL, e.StatusCode, e.Body)
}

// Client talks to the GitHub REST API. The token is optional; when set it
// is sent on every request for the elevated rate limit.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListRepos returns every repository owned by username, forks and archived
// repositories included. Pages are requested in order until a short page
// signals the end of the listing. Any non-200 page aborts the whole fetch.
func (c *Client) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	var all []Repo
	for page := 1; ; page++ {
		u := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=%d&page=%d&type=all",
			c.baseURL, url.PathEscape(username), pageSize, page)

		var repos []Repo
		if err := c.getJSON(ctx, u, &repos); err != nil {
			return nil, fmt.Errorf("listing repositories page %d: %w", page, err)
		}

		all = append(all, repos...)
		if len(repos) < pageSize {
			break
		}
	}
	return all, nil
}

type readmeResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// Readme returns the raw README content for a repository, typically
// base64-encoded per the API's default media type.
func (c *Client) Readme(ctx context.Context, owner, repo string) (string, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/readme",
		c.baseURL, url.PathEscape(owner), url.PathEscape(repo))

	var readme readmeResponse
	if err := c.getJSON(ctx, u, &readme); err != nil {
		return "", fmt.Errorf("fetching readme for %s/%s: %w", owner, repo, err)
	}
	return readme.Content, nil
}

func (c *Client) getJSON(ctx context.Context, urlStr string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &StatusError{
			URL:        urlStr,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}
	return json.Unmarshal(body, out)
}
