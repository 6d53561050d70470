package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saksham-engine/pkg/models"
)

func suggestionLabels(suggestions []models.Suggestion) []string {
	labels := make([]string, len(suggestions))
	for i, s := range suggestions {
		labels[i] = s.Label
	}
	return labels
}

func TestSuggestions_TooFewResults(t *testing.T) {
	profile := testProfile()

	f := models.NewFilterState()
	f.SelectedSkills = []string{"Python", "SQL", "Excel", "Tableau", "R"}
	f.MinStipend = "12000"
	f.Location = "Bangalore"

	got := Suggestions(profile, f, 3)
	labels := suggestionLabels(got)

	assert.Contains(t, labels, "Broaden Skills")
	assert.Contains(t, labels, "Lower Stipend Floor")
	assert.Contains(t, labels, "Search Everywhere")

	for _, s := range got {
		switch s.Label {
		case "Broaden Skills":
			assert.Equal(t, []string{"Python", "SQL", "Excel"}, s.Filters.SelectedSkills)
		case "Lower Stipend Floor":
			require.NotNil(t, s.Filters.MinStipend)
			assert.Equal(t, "8000", *s.Filters.MinStipend)
		case "Search Everywhere":
			require.NotNil(t, s.Filters.Location)
			assert.Equal(t, models.FilterAll, *s.Filters.Location)
		}
	}
}

func TestSuggestions_RulesFireIndependently(t *testing.T) {
	// Floor of exactly 10000 is not "high", and three selected skills
	// are not "many": only the location rule fires.
	f := models.NewFilterState()
	f.SelectedSkills = []string{"Python", "SQL", "Excel"}
	f.MinStipend = "10000"
	f.Location = "Pune"

	got := Suggestions(testProfile(), f, 0)
	assert.Equal(t, []string{"Search Everywhere"}, suggestionLabels(got))
}

func TestSuggestions_TooManyResults(t *testing.T) {
	profile := testProfile()
	f := models.NewFilterState()

	got := Suggestions(profile, f, 75)
	labels := suggestionLabels(got)

	assert.Contains(t, labels, "Apply Your Skills")
	assert.Contains(t, labels, "Raise Stipend Floor")

	for _, s := range got {
		switch s.Label {
		case "Apply Your Skills":
			assert.Equal(t, profile.Skills, s.Filters.SelectedSkills)
		case "Raise Stipend Floor":
			require.NotNil(t, s.Filters.MinStipend)
			assert.Equal(t, "15000", *s.Filters.MinStipend)
		}
	}

	t.Run("skills already selected suppresses the skills rule", func(t *testing.T) {
		withSkills := f
		withSkills.SelectedSkills = []string{"Python"}
		got := Suggestions(profile, withSkills, 75)
		assert.NotContains(t, suggestionLabels(got), "Apply Your Skills")
	})

	t.Run("nil profile suppresses the skills rule", func(t *testing.T) {
		got := Suggestions(nil, f, 75)
		assert.NotContains(t, suggestionLabels(got), "Apply Your Skills")
	})
}

func TestSuggestions_HealthyBand(t *testing.T) {
	f := models.NewFilterState()
	f.SelectedSkills = []string{"a", "b", "c", "d", "e"}
	f.MinStipend = "20000"
	f.Location = "Delhi"

	for _, count := range []int{5, 20, 50} {
		assert.Empty(t, Suggestions(testProfile(), f, count), "count %d", count)
	}
}
