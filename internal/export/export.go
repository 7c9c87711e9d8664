// Package export writes every derived catalog view to a directory of JSON
// files so the site can be served without a running backend.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"skullfire.dev/internal/catalog"
	"skullfire.dev/internal/services"
)

// ErrFileCollision is returned when two views would be written to the same file
var ErrFileCollision = errors.New("export file collision")

// Exporter writes static JSON views
type Exporter struct {
	projects *services.ProjectService
	profile  *services.ProfileService
	logger   *zap.Logger
}

// Result summarizes an export run
type Result struct {
	Files []string
}

// New creates an Exporter
func New(projects *services.ProjectService, profile *services.ProfileService, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{projects: projects, profile: profile, logger: logger}
}

// Run writes all views under outputDir:
//
//	projects.json              all projects
//	facets.json                category facets
//	stats.json                 aggregate counters
//	profile.json               biography content
//	projects/<id>.json         one card per project
//	categories/<category>.json cards per category facet
func (e *Exporter) Run(outputDir string) (*Result, error) {
	for _, dir := range []string{outputDir, filepath.Join(outputDir, "projects"), filepath.Join(outputDir, "categories")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	res := &Result{}
	written := make(map[string]bool)
	write := func(rel string, v any) error {
		if written[rel] {
			return fmt.Errorf("%w: %s", ErrFileCollision, rel)
		}
		written[rel] = true
		path := filepath.Join(outputDir, rel)
		if err := writeJSON(path, v); err != nil {
			return err
		}
		res.Files = append(res.Files, rel)
		e.logger.Info("wrote file", zap.String("path", rel))
		return nil
	}

	all := e.projects.GetAll()
	if err := write("projects.json", all); err != nil {
		return nil, err
	}
	if err := write("facets.json", e.projects.Facets()); err != nil {
		return nil, err
	}
	if err := write("stats.json", e.projects.Stats()); err != nil {
		return nil, err
	}
	if err := write("profile.json", e.profile.Profile()); err != nil {
		return nil, err
	}

	for _, p := range all {
		if err := write(filepath.Join("projects", fileName(p.ID)), e.projects.View(p)); err != nil {
			return nil, err
		}
	}

	for _, facet := range e.projects.Facets() {
		q := catalog.NewQuery()
		q.SetFilter(facet.Category)
		cards := e.projects.Views(e.projects.Search(q))
		if err := write(filepath.Join("categories", fileName(string(facet.Category))), cards); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// fileName escapes path separators so ids and category values stay inside
// their directory and distinct keys map to distinct files
func fileName(key string) string {
	if key == "" {
		return "uncategorized.json"
	}
	return url.PathEscape(key) + ".json"
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
