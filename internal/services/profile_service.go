package services

import (
	"skullfire.dev/internal/models"
)

// ProfileService serves the biography content
type ProfileService struct {
	profile *models.Profile
}

// NewProfileService creates a new ProfileService
func NewProfileService(profile *models.Profile) *ProfileService {
	if profile == nil {
		profile = &models.Profile{}
	}
	return &ProfileService{profile: profile}
}

// Profile returns the whole profile
func (s *ProfileService) Profile() *models.Profile {
	return s.profile
}

// Skills returns the skill groups
func (s *ProfileService) Skills() []models.SkillGroup {
	return nonNil(s.profile.SkillGroups)
}

// Experience returns the work timeline
func (s *ProfileService) Experience() []models.Experience {
	return nonNil(s.profile.Experience)
}

// Achievements returns awards, highlighted ones first, otherwise in
// declaration order
func (s *ProfileService) Achievements() []models.Achievement {
	out := make([]models.Achievement, 0, len(s.profile.Achievements))
	for _, a := range s.profile.Achievements {
		if a.Highlight {
			out = append(out, a)
		}
	}
	for _, a := range s.profile.Achievements {
		if !a.Highlight {
			out = append(out, a)
		}
	}
	return out
}

// SocialLinks returns the contact links
func (s *ProfileService) SocialLinks() []models.SocialLink {
	return nonNil(s.profile.SocialLinks)
}

// nonNil keeps empty lists encoding as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
