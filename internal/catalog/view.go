package catalog

import (
	"errors"
	"fmt"

	"skullfire.dev/internal/models"
)

const (
	CTAVisitLiveSite = "Visit Live Site"
	CTAViewDetails   = "View Details"
)

var (
	ErrNoResolver    = errors.New("no asset resolver configured")
	ErrEmptyAssetURL = errors.New("asset resolver returned no url")
)

// AssetResolver turns an asset reference into a concrete image URL
type AssetResolver interface {
	ResolveURL(ref models.AssetRef) (string, error)
}

// ResolverFunc adapts a function to AssetResolver
type ResolverFunc func(ref models.AssetRef) (string, error)

// ResolveURL calls f
func (f ResolverFunc) ResolveURL(ref models.AssetRef) (string, error) {
	return f(ref)
}

// ProjectView is a project prepared for a gallery card
type ProjectView struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Category      models.Category `json:"category"`
	CategoryLabel string          `json:"category_label"`
	Icon          string          `json:"icon"`
	Description   string          `json:"description"`
	Summary       string          `json:"summary"`
	CoverURL      string          `json:"cover_url,omitempty"`
	LiveURL       string          `json:"live_url,omitempty"`
	GitHubURL     string          `json:"github_url,omitempty"`
	HasLiveDemo   bool            `json:"has_live_demo"`
	HasSource     bool            `json:"has_source"`
	CallToAction  string          `json:"call_to_action"`
	Tags          []string        `json:"tags"`
	Featured      bool            `json:"featured"`
	Winner        bool            `json:"winner"`
	Prize         string          `json:"prize,omitempty"`
	PublishedAt   string          `json:"published_at"`
}

var cardIcons = map[models.Category]string{
	models.CategoryHackathonWinner: "trophy",
	models.CategoryMachineLearning: "brain",
	models.CategoryComputerVision:  "zap",
	models.CategoryWebDevelopment:  "globe",
}

// CardIcon returns the card icon name for a category
func CardIcon(c models.Category) string {
	if icon, ok := cardIcons[c]; ok {
		return icon
	}
	return "code"
}

// CoverURL resolves a cover to a URL. An empty URL with a nil error means the
// project has no cover. Errors and panics from r are returned as errors; a
// card built after a failure simply has no image.
func CoverURL(cover models.CoverImage, r AssetResolver) (url string, err error) {
	switch cover.Kind {
	case models.CoverURL:
		return cover.URL, nil
	case models.CoverAsset:
	default:
		return "", nil
	}

	if r == nil {
		return "", ErrNoResolver
	}

	defer func() {
		if rec := recover(); rec != nil {
			url = ""
			err = fmt.Errorf("asset resolver panic: %v", rec)
		}
	}()

	url, err = r.ResolveURL(cover.Asset)
	if err != nil {
		return "", fmt.Errorf("resolve asset %q: %w", cover.Asset.Ref, err)
	}
	if url == "" {
		return "", ErrEmptyAssetURL
	}
	return url, nil
}

// NewView derives the card for p given an already resolved cover URL
func NewView(p models.Project, coverURL string) ProjectView {
	description := ResolveDescription(p.Description)
	live := IsValidExternalURL(p.LiveURL)

	view := ProjectView{
		ID:            p.ID,
		Title:         p.Title,
		Category:      p.Category,
		CategoryLabel: CategoryLabel(p.Category),
		Icon:          CardIcon(p.Category),
		Description:   description,
		Summary:       Truncate(description, DefaultTruncateLength),
		CoverURL:      coverURL,
		GitHubURL:     p.GitHubURL,
		HasLiveDemo:   live,
		HasSource:     p.GitHubURL != "",
		CallToAction:  CTAViewDetails,
		Tags:          p.Tags,
		Featured:      p.Featured,
		Winner:        p.IsHackathon,
		Prize:         p.Prize,
		PublishedAt:   p.PublishedAt,
	}
	if live {
		view.LiveURL = p.LiveURL
		view.CallToAction = CTAVisitLiveSite
	}
	if view.Tags == nil {
		view.Tags = []string{}
	}
	return view
}
