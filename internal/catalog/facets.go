package catalog

import "skullfire.dev/internal/models"

// Facet drives one filter button: a category, its label and how many projects
// it holds
type Facet struct {
	Category models.Category `json:"category"`
	Label    string          `json:"label"`
	Icon     string          `json:"icon"`
	Count    int             `json:"count"`
}

type categoryStyle struct {
	label string
	icon  string
}

var facetStyles = map[models.Category]categoryStyle{
	models.CategoryAll:             {label: "All Projects", icon: "filter"},
	models.CategoryHackathonWinner: {label: "Hackathon Winners", icon: "trophy"},
	models.CategoryMachineLearning: {label: "Machine Learning", icon: "brain"},
	models.CategoryComputerVision:  {label: "Computer Vision", icon: "zap"},
	models.CategoryWebDevelopment:  {label: "Web Development", icon: "code"},
}

// Categories outside the known table share one generic style
const (
	genericFacetLabel = "Other"
	genericFacetIcon  = "globe"
)

// CategoryLabel returns the display label for a category. Unknown categories,
// the empty one included, get a generic label.
func CategoryLabel(c models.Category) string {
	if style, ok := facetStyles[c]; ok {
		return style.label
	}
	return genericFacetLabel
}

// FacetIcon returns the filter-button icon name for a category
func FacetIcon(c models.Category) string {
	if style, ok := facetStyles[c]; ok {
		return style.icon
	}
	return genericFacetIcon
}

// Facets returns the "all" facet followed by each category present in the
// catalog, in first-seen order, with per-category counts
func (c *Catalog) Facets() []Facet {
	counts := make(map[models.Category]int)
	order := make([]models.Category, 0)
	for _, p := range c.projects {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	facets := make([]Facet, 0, len(order)+1)
	facets = append(facets, newFacet(models.CategoryAll, len(c.projects)))
	for _, category := range order {
		facets = append(facets, newFacet(category, counts[category]))
	}
	return facets
}

func newFacet(category models.Category, count int) Facet {
	return Facet{
		Category: category,
		Label:    CategoryLabel(category),
		Icon:     FacetIcon(category),
		Count:    count,
	}
}
