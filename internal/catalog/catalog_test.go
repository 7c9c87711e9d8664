package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skullfire.dev/internal/models"
)

func project(id, title string, category models.Category, tags ...string) models.Project {
	return models.Project{
		ID:          id,
		Title:       title,
		Category:    category,
		Description: models.PlainDescription(title + " description"),
		Tags:        tags,
	}
}

// sampleProjects has 10 records: 2 hackathon wins, 3 machine-learning,
// 1 computer-vision and 4 web-development
func sampleProjects() []models.Project {
	hack1 := project("edge", "EdgeCompress", models.CategoryHackathonWinner, "Machine Learning", "Flutter")
	hack1.IsHackathon = true
	hack1.Featured = true
	hack2 := project("hack2", "Campus Navigator", models.CategoryHackathonWinner, "Maps")
	hack2.IsHackathon = true

	fatigue := project("fatigue", "Fatigue Detection", models.CategoryMachineLearning, "Python", "CNN")
	fatigue.Description = models.PlainDescription("Real-time fatigue detection with EfficientNet.")

	return []models.Project{
		hack1,
		hack2,
		project("power", "Power Fault Prediction", models.CategoryMachineLearning, "IoT"),
		fatigue,
		project("fire", "Forest Fire Detection", models.CategoryMachineLearning, "SVM"),
		project("assembly", "Assembly Line Defect Detection", models.CategoryComputerVision, "OpenCV"),
		project("pimlico", "Pimlico Corporate Website", models.CategoryWebDevelopment, "Web Development"),
		project("bigbuddie", "BigBuddie Platform", models.CategoryWebDevelopment, "Web Development"),
		project("migliore", "Migliore Life Sciences Website", models.CategoryWebDevelopment, "Healthcare"),
		project("beyond-bites", "Beyond Bites - Food Platform", models.CategoryWebDevelopment, "Food Tech", "React"),
	}
}

func sampleCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(sampleProjects())
	require.NoError(t, err)
	return c
}

func ids(projects []models.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestNewRejectsBadIdentifiers(t *testing.T) {
	_, err := New([]models.Project{project("a", "A", models.CategoryWebDevelopment), project("a", "B", models.CategoryWebDevelopment)})
	assert.True(t, errors.Is(err, ErrDuplicateID))

	_, err = New([]models.Project{project(" ", "A", models.CategoryWebDevelopment)})
	assert.True(t, errors.Is(err, ErrEmptyID))
}

func TestNewCopiesInput(t *testing.T) {
	projects := sampleProjects()
	c, err := New(projects)
	require.NoError(t, err)

	projects[0].Title = "mutated"
	projects[0].Tags[0] = "mutated"

	got, ok := c.Get("edge")
	require.True(t, ok)
	assert.Equal(t, "EdgeCompress", got.Title)
	assert.Equal(t, "Machine Learning", got.Tags[0])
}

func TestGetAndAll(t *testing.T) {
	c := sampleCatalog(t)

	assert.Equal(t, 10, c.Len())
	assert.Equal(t, ids(sampleProjects()), ids(c.All()))

	_, ok := c.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"edge"}, ids(c.Featured()))
}

func TestResultsDefaultQueryReturnsEverything(t *testing.T) {
	c := sampleCatalog(t)

	assert.Equal(t, ids(sampleProjects()), ids(c.Results(NewQuery())))
}

func TestResultsEmptyCategoryIsNotAll(t *testing.T) {
	uncategorized := project("b", "B", "")
	c, err := New([]models.Project{project("a", "A", models.CategoryWebDevelopment), uncategorized})
	require.NoError(t, err)

	q := NewQuery()
	q.SetFilter("")
	assert.Equal(t, []string{"b"}, ids(c.Results(q)))
	assert.Equal(t, []string{"b"}, ids(c.Results(Query{})))

	// every facet filters down to exactly its own count
	for _, facet := range c.Facets() {
		q := NewQuery()
		q.SetFilter(facet.Category)
		assert.Len(t, c.Results(q), facet.Count, "facet %q", facet.Category)
	}
}

func TestResultsFilterByCategory(t *testing.T) {
	c := sampleCatalog(t)

	for _, category := range models.KnownCategories {
		q := NewQuery()
		q.SetFilter(category)
		for _, p := range c.Results(q) {
			assert.Equal(t, category, p.Category)
		}
	}

	q := NewQuery()
	q.SetFilter(models.CategoryMachineLearning)
	assert.Equal(t, []string{"power", "fatigue", "fire"}, ids(c.Results(q)))
}

func TestResultsFilterIsCaseSensitive(t *testing.T) {
	c := sampleCatalog(t)

	q := NewQuery()
	q.SetFilter("Web-Development")
	got := c.Results(q)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResultsUnknownFilterIsEmpty(t *testing.T) {
	c := sampleCatalog(t)

	q := NewQuery()
	q.SetFilter("robotics")
	got := c.Results(q)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResultsIdempotent(t *testing.T) {
	c := sampleCatalog(t)

	q := NewQuery()
	q.SetFilter(models.CategoryWebDevelopment)
	q.SetFilter(models.CategoryWebDevelopment)
	q.SetSearchTerm("web")

	first := c.Results(q)
	second := c.Results(q)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated query differs (-first +second):\n%s", diff)
	}
}

func TestResultsSearchIsCaseInsensitive(t *testing.T) {
	c := sampleCatalog(t)

	upper := NewQuery()
	upper.SetSearchTerm("PYTHON")
	lower := NewQuery()
	lower.SetSearchTerm("python")

	assert.Equal(t, []string{"fatigue"}, ids(c.Results(lower)))
	assert.Equal(t, ids(c.Results(lower)), ids(c.Results(upper)))
}

func TestResultsSearchFields(t *testing.T) {
	c := sampleCatalog(t)

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "title", term: "bigbuddie", want: []string{"bigbuddie"}},
		{name: "description", term: "efficientnet", want: []string{"fatigue"}},
		{name: "tag", term: "opencv", want: []string{"assembly"}},
		{name: "substring of tag", term: "tech", want: []string{"beyond-bites"}},
		{name: "across categories", term: "detection", want: []string{"fatigue", "fire", "assembly"}},
		{name: "not trimmed", term: " food", want: []string{"beyond-bites"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuery()
			q.SetSearchTerm(tt.term)
			assert.Equal(t, tt.want, ids(c.Results(q)))
		})
	}
}

func TestResultsSearchRichDescription(t *testing.T) {
	rich := project("rich", "Rich", models.CategoryWebDevelopment)
	rich.Description = models.RichDescription(
		models.Block{Children: []models.Span{{Text: "Intro."}}},
		models.Block{Children: []models.Span{{Text: "Uses "}, {Text: "Kubernetes"}}},
	)
	c, err := New([]models.Project{rich})
	require.NoError(t, err)

	q := NewQuery()
	q.SetSearchTerm("uses kubernetes")
	assert.Equal(t, []string{"rich"}, ids(c.Results(q)))
}

func TestResultsFilterThenSearch(t *testing.T) {
	c := sampleCatalog(t)

	q := NewQuery()
	q.SetFilter(models.CategoryWebDevelopment)
	q.SetSearchTerm("food")

	got := c.Results(q)
	require.Len(t, got, 1)
	assert.Equal(t, "Beyond Bites - Food Platform", got[0].Title)
}

func TestResultsNoMatch(t *testing.T) {
	c := sampleCatalog(t)

	q := NewQuery()
	q.SetFilter(models.CategoryAll)
	q.SetSearchTerm("zzzznomatch")

	got := c.Results(q)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQueryReset(t *testing.T) {
	q := NewQuery()
	q.SetFilter(models.CategoryComputerVision)
	q.SetSearchTerm("x")
	q.Reset()

	assert.Equal(t, NewQuery(), q)
}

func TestStatsScenario(t *testing.T) {
	c := sampleCatalog(t)

	want := Stats{Total: 10, HackathonWins: 2, MLAndVisionCount: 4, WebCount: 4}
	assert.Equal(t, want, c.Stats())
}

func TestStatsIgnoreQuery(t *testing.T) {
	c := sampleCatalog(t)

	q := NewQuery()
	q.SetFilter(models.CategoryWebDevelopment)
	q.SetSearchTerm("food")
	_ = c.Results(q)

	assert.Equal(t, c.Len(), c.Stats().Total)
}

func TestFacets(t *testing.T) {
	projects := append(sampleProjects(), project("bot", "Robot Arm", "robotics"))
	c, err := New(projects)
	require.NoError(t, err)

	want := []Facet{
		{Category: models.CategoryAll, Label: "All Projects", Icon: "filter", Count: 11},
		{Category: models.CategoryHackathonWinner, Label: "Hackathon Winners", Icon: "trophy", Count: 2},
		{Category: models.CategoryMachineLearning, Label: "Machine Learning", Icon: "brain", Count: 3},
		{Category: models.CategoryComputerVision, Label: "Computer Vision", Icon: "zap", Count: 1},
		{Category: models.CategoryWebDevelopment, Label: "Web Development", Icon: "code", Count: 4},
		{Category: "robotics", Label: "Other", Icon: "globe", Count: 1},
	}
	if diff := cmp.Diff(want, c.Facets()); diff != "" {
		t.Fatalf("facets mismatch (-want +got):\n%s", diff)
	}
}

func TestFacetsEmptyCategoryGetsGenericLabel(t *testing.T) {
	c, err := New([]models.Project{project("a", "A", models.CategoryWebDevelopment), project("b", "B", "")})
	require.NoError(t, err)

	facets := c.Facets()
	require.Len(t, facets, 3)
	assert.Equal(t, Facet{Category: "", Label: "Other", Icon: "globe", Count: 1}, facets[2])
}

func TestFacetsEmptyCatalog(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, []Facet{{Category: models.CategoryAll, Label: "All Projects", Icon: "filter", Count: 0}}, c.Facets())
	assert.Equal(t, Stats{}, c.Stats())
}
