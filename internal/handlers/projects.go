package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"skullfire.dev/internal/catalog"
	"skullfire.dev/internal/models"
	"skullfire.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *zap.Logger) *ProjectHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectHandler{projectService: ps, logger: logger}
}

// ListProjects handles GET /api/projects?category=...&q=...&view=card
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	query := parseQuery(r)
	projects := h.projectService.Search(query)

	if wantsCards(r) {
		respondJSON(w, h.logger, http.StatusOK, h.projectService.Views(projects))
		return
	}
	respondJSON(w, h.logger, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			respondError(w, h.logger, http.StatusNotFound, "Project not found")
			return
		}
		respondError(w, h.logger, http.StatusInternalServerError, err.Error())
		return
	}

	if wantsCards(r) {
		respondJSON(w, h.logger, http.StatusOK, h.projectService.View(*project))
		return
	}
	respondJSON(w, h.logger, http.StatusOK, project)
}

// GetFacets handles GET /api/projects/facets
func (h *ProjectHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.projectService.Facets())
}

// GetStats handles GET /api/projects/stats
func (h *ProjectHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.projectService.Stats())
}

// ListFeatured handles GET /api/projects/featured
func (h *ProjectHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	featured := h.projectService.Featured()
	if wantsCards(r) {
		respondJSON(w, h.logger, http.StatusOK, h.projectService.Views(featured))
		return
	}
	respondJSON(w, h.logger, http.StatusOK, featured)
}

// parseQuery maps query parameters onto catalog query state. The search term
// is used verbatim.
func parseQuery(r *http.Request) catalog.Query {
	values := r.URL.Query()
	q := catalog.NewQuery()
	if category := values.Get("category"); category != "" {
		q.SetFilter(models.Category(category))
	}
	q.SetSearchTerm(values.Get("q"))
	return q
}

func wantsCards(r *http.Request) bool {
	return r.URL.Query().Get("view") == "card"
}
