package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"skullfire.dev/internal/services"
)

// ProfileHandler handles biography endpoints
type ProfileHandler struct {
	profileService *services.ProfileService
	logger         *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(ps *services.ProfileService, logger *zap.Logger) *ProfileHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileHandler{profileService: ps, logger: logger}
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.profileService.Profile())
}

// GetSkills handles GET /api/profile/skills
func (h *ProfileHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.profileService.Skills())
}

// GetExperience handles GET /api/profile/experience
func (h *ProfileHandler) GetExperience(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.profileService.Experience())
}

// GetAchievements handles GET /api/profile/achievements
func (h *ProfileHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.profileService.Achievements())
}

// GetSocialLinks handles GET /api/profile/links
func (h *ProfileHandler) GetSocialLinks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.profileService.SocialLinks())
}
