package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skullfire.dev/internal/models"
)

func staticResolver(url string) ResolverFunc {
	return func(models.AssetRef) (string, error) { return url, nil }
}

func TestCoverURL(t *testing.T) {
	asset := models.CoverFromAsset("image-abc-800x450-jpg")

	tests := []struct {
		name    string
		cover   models.CoverImage
		r       AssetResolver
		want    string
		wantErr bool
	}{
		{name: "none", cover: models.CoverImage{}, want: ""},
		{name: "url", cover: models.CoverFromURL("https://img.example.com/a.jpg"), want: "https://img.example.com/a.jpg"},
		{name: "asset", cover: asset, r: staticResolver("https://cdn.example.com/a.jpg"), want: "https://cdn.example.com/a.jpg"},
		{name: "nil resolver", cover: asset, wantErr: true},
		{name: "resolver error", cover: asset, r: ResolverFunc(func(models.AssetRef) (string, error) {
			return "", errors.New("boom")
		}), wantErr: true},
		{name: "resolver empty", cover: asset, r: staticResolver(""), wantErr: true},
		{name: "resolver panic", cover: asset, r: ResolverFunc(func(models.AssetRef) (string, error) {
			panic("resolver exploded")
		}), wantErr: true},
		{name: "nil func", cover: asset, r: ResolverFunc(nil), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got string
				err error
			)
			require.NotPanics(t, func() { got, err = CoverURL(tt.cover, tt.r) })
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewViewWithLiveDemo(t *testing.T) {
	p := models.Project{
		ID:          "beyond-bites",
		Title:       "Beyond Bites - Food Platform",
		Category:    models.CategoryWebDevelopment,
		Description: models.PlainDescription(strings.Repeat("d", 200)),
		LiveURL:     "https://skullfire07.github.io/beyond_bites/#/",
		GitHubURL:   "https://github.com/skullfire07/beyond_bites",
		Tags:        []string{"React"},
		Featured:    true,
	}

	view := NewView(p, "https://img.example.com/b.jpg")

	assert.Equal(t, "Web Development", view.CategoryLabel)
	assert.Equal(t, "globe", view.Icon)
	assert.True(t, view.HasLiveDemo)
	assert.True(t, view.HasSource)
	assert.Equal(t, p.LiveURL, view.LiveURL)
	assert.Equal(t, CTAVisitLiveSite, view.CallToAction)
	assert.Equal(t, strings.Repeat("d", 150)+Ellipsis, view.Summary)
	assert.Len(t, view.Description, 200)
	assert.Equal(t, "https://img.example.com/b.jpg", view.CoverURL)
	assert.True(t, view.Featured)
	assert.False(t, view.Winner)
}

func TestNewViewDegradesGracefully(t *testing.T) {
	p := models.Project{
		ID:          "odd",
		Title:       "Odd",
		Category:    "robotics",
		Description: models.RichDescription(),
		LiveURL:     "#",
		IsHackathon: true,
		Prize:       "First place",
	}

	view := NewView(p, "")

	assert.Equal(t, "Other", view.CategoryLabel)
	assert.Equal(t, "code", view.Icon)
	assert.Equal(t, FallbackDescription, view.Description)
	assert.False(t, view.HasLiveDemo)
	assert.Empty(t, view.LiveURL)
	assert.False(t, view.HasSource)
	assert.Equal(t, CTAViewDetails, view.CallToAction)
	assert.NotNil(t, view.Tags)
	assert.True(t, view.Winner)
	assert.Equal(t, "First place", view.Prize)
}
