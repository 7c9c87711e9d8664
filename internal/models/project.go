package models

// Category identifies which bucket of the gallery a project belongs to
type Category string

const (
	// CategoryAll is the filter sentinel that matches every project
	CategoryAll Category = "all"

	CategoryHackathonWinner Category = "hackathon-winner"
	CategoryMachineLearning Category = "machine-learning"
	CategoryComputerVision  Category = "computer-vision"
	CategoryWebDevelopment  Category = "web-development"
)

// KnownCategories lists the fixed category enumeration in display order
var KnownCategories = []Category{
	CategoryHackathonWinner,
	CategoryMachineLearning,
	CategoryComputerVision,
	CategoryWebDevelopment,
}

// Known reports whether c belongs to the fixed enumeration
func (c Category) Known() bool {
	for _, k := range KnownCategories {
		if c == k {
			return true
		}
	}
	return false
}

// Project represents a portfolio project
type Project struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Category    Category    `json:"category" yaml:"category"`
	Description Description `json:"description" yaml:"description"`
	CoverImage  CoverImage  `json:"cover_image,omitempty" yaml:"cover_image,omitempty"`
	LiveURL     string      `json:"live_url,omitempty" yaml:"live_url,omitempty"`
	GitHubURL   string      `json:"github_url,omitempty" yaml:"github_url,omitempty"`
	Tags        []string    `json:"tags" yaml:"tags"`
	Featured    bool        `json:"featured" yaml:"featured"`
	IsHackathon bool        `json:"is_hackathon" yaml:"is_hackathon"`
	Prize       string      `json:"prize,omitempty" yaml:"prize,omitempty"`
	PublishedAt string      `json:"published_at" yaml:"published_at"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}
