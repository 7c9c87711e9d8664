package catalog

import "skullfire.dev/internal/models"

// Stats are the headline counters over the whole catalog
type Stats struct {
	Total            int `json:"total"`
	HackathonWins    int `json:"hackathon_wins"`
	MLAndVisionCount int `json:"ml_and_vision_count"`
	WebCount         int `json:"web_count"`
}

// Stats aggregates over every project. Queries never affect it.
func (c *Catalog) Stats() Stats {
	stats := Stats{Total: len(c.projects)}
	for _, p := range c.projects {
		if p.IsHackathon {
			stats.HackathonWins++
		}
		switch p.Category {
		case models.CategoryMachineLearning, models.CategoryComputerVision:
			stats.MLAndVisionCount++
		case models.CategoryWebDevelopment:
			stats.WebCount++
		}
	}
	return stats
}
