package models

// Project represents a portfolio project, normalized from a GitHub
// repository or supplied by a curated source.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Stack       []string `json:"stack"`
	GitHub      string   `json:"github"`
	Demo        string   `json:"demo,omitempty"`
	Category    string   `json:"category"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	Topics      []string `json:"topics,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}
