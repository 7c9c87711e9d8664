// Package catalog is the project query engine: an immutable, ordered set of
// projects plus the derived views the site renders from it (filtered results,
// category facets, aggregate stats and display cards).
//
// Nothing in this package returns an error or panics once a Catalog has been
// built. Malformed content degrades to fallbacks instead.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"skullfire.dev/internal/models"
)

var (
	ErrEmptyID     = errors.New("project id is required")
	ErrDuplicateID = errors.New("duplicate project id")
)

// Catalog holds the projects in declaration order. It is never mutated after
// New returns, so it is safe for concurrent readers.
type Catalog struct {
	projects []models.Project
	index    map[string]int
	search   []searchFields
}

// searchFields caches the case-folded text a search term is matched against
type searchFields struct {
	title       string
	description string
	tags        []string
}

// New builds a catalog from projects. Identifiers must be non-empty and
// unique; the slice is copied.
func New(projects []models.Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]models.Project, 0, len(projects)),
		index:    make(map[string]int, len(projects)),
		search:   make([]searchFields, 0, len(projects)),
	}

	fold := cases.Fold()
	for i, p := range projects {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("project %d: %w", i, ErrEmptyID)
		}
		if _, exists := c.index[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}

		p.Tags = slices.Clone(p.Tags)
		c.index[p.ID] = len(c.projects)
		c.projects = append(c.projects, p)

		fields := searchFields{
			title:       fold.String(p.Title),
			description: fold.String(p.Description.PlainText()),
			tags:        make([]string, len(p.Tags)),
		}
		for j, tag := range p.Tags {
			fields.tags[j] = fold.String(tag)
		}
		c.search = append(c.search, fields)
	}

	return c, nil
}

// Len returns the number of projects
func (c *Catalog) Len() int {
	return len(c.projects)
}

// All returns every project in declaration order
func (c *Catalog) All() []models.Project {
	return slices.Clone(c.projects)
}

// Get returns the project with the given id
func (c *Catalog) Get(id string) (models.Project, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Project{}, false
	}
	return c.projects[i], true
}

// Featured returns the projects flagged as featured, in declaration order
func (c *Catalog) Featured() []models.Project {
	out := make([]models.Project, 0)
	for _, p := range c.projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Results returns the projects matching q in declaration order. The result
// depends only on the catalog and q.
func (c *Catalog) Results(q Query) []models.Project {
	var needle string
	if q.Search != "" {
		needle = cases.Fold().String(q.Search)
	}

	out := make([]models.Project, 0)
	for i, p := range c.projects {
		if q.Category != models.CategoryAll && p.Category != q.Category {
			continue
		}
		if q.Search != "" && !c.search[i].contains(needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (f searchFields) contains(needle string) bool {
	if strings.Contains(f.title, needle) || strings.Contains(f.description, needle) {
		return true
	}
	for _, tag := range f.tags {
		if strings.Contains(tag, needle) {
			return true
		}
	}
	return false
}
