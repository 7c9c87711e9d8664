package services

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"skullfire.dev/internal/catalog"
	"skullfire.dev/internal/metrics"
	"skullfire.dev/internal/models"
)

// ErrProjectNotFound is returned by GetByID for unknown ids
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	catalog  *catalog.Catalog
	resolver catalog.AssetResolver
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// ProjectServiceOption customizes a ProjectService
type ProjectServiceOption func(*ProjectService)

// WithAssetResolver sets the resolver used for asset-hosted covers
func WithAssetResolver(r catalog.AssetResolver) ProjectServiceOption {
	return func(s *ProjectService) { s.resolver = r }
}

// WithMetrics records query and asset metrics
func WithMetrics(m *metrics.Metrics) ProjectServiceOption {
	return func(s *ProjectService) { s.metrics = m }
}

// WithLogger sets the service logger
func WithLogger(l *zap.Logger) ProjectServiceOption {
	return func(s *ProjectService) { s.logger = l }
}

// NewProjectService creates a new ProjectService. The project list is
// validated once here; duplicate or empty ids are an error.
func NewProjectService(projects *models.ProjectList, opts ...ProjectServiceOption) (*ProjectService, error) {
	var list []models.Project
	if projects != nil {
		list = projects.Projects
	}
	c, err := catalog.New(list)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	s := &ProjectService{catalog: c, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics != nil {
		s.metrics.CatalogProjects.Set(float64(c.Len()))
	}
	return s, nil
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.catalog.All()
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return &p, nil
}

// Search returns the projects matching q
func (s *ProjectService) Search(q catalog.Query) []models.Project {
	results := s.catalog.Results(q)

	if s.metrics != nil {
		s.metrics.CatalogQueriesTotal.WithLabelValues(categoryLabel(q.Category), strconv.FormatBool(q.Search != "")).Inc()
		s.metrics.CatalogQueryResults.Observe(float64(len(results)))
	}
	s.logger.Debug("catalog query",
		zap.String("category", string(q.Category)),
		zap.String("search", q.Search),
		zap.Int("results", len(results)),
	)
	return results
}

// Facets returns the category filter facets
func (s *ProjectService) Facets() []catalog.Facet {
	return s.catalog.Facets()
}

// Stats returns the catalog-wide counters
func (s *ProjectService) Stats() catalog.Stats {
	return s.catalog.Stats()
}

// Featured returns the featured projects
func (s *ProjectService) Featured() []models.Project {
	return s.catalog.Featured()
}

// View derives the card for a project. Cover resolution failures are logged
// and counted, and the card falls back to the placeholder.
func (s *ProjectService) View(p models.Project) catalog.ProjectView {
	url, err := catalog.CoverURL(p.CoverImage, s.resolver)
	if err != nil {
		s.logger.Debug("cover image unavailable", zap.String("project", p.ID), zap.Error(err))
		if s.metrics != nil {
			s.metrics.AssetResolutionErrors.Inc()
		}
	}
	return catalog.NewView(p, url)
}

// Views derives cards for projects, preserving order
func (s *ProjectService) Views(projects []models.Project) []catalog.ProjectView {
	views := make([]catalog.ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, s.View(p))
	}
	return views
}

// categoryLabel keeps metric cardinality bounded: filters outside the known
// set are reported as "other"
func categoryLabel(c models.Category) string {
	switch {
	case c == models.CategoryAll:
		return string(models.CategoryAll)
	case c.Known():
		return string(c)
	default:
		return "other"
	}
}
