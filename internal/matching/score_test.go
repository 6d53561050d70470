package matching

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saksham-engine/pkg/models"
)

func testProfile() *models.Profile {
	return &models.Profile{
		Skills:          []string{"Python", "SQL"},
		Interests:       []string{"Technology"},
		DesiredLocation: models.Location{City: "Bangalore"},
	}
}

func TestComparisonBreakdown(t *testing.T) {
	profile := testProfile()

	t.Run("full match hits the ceiling", func(t *testing.T) {
		in := models.Internship{
			Title:          "Data Intern",
			Location:       models.Location{City: "Bangalore"},
			Stipend:        "₹15,000/month",
			SectorTags:     []string{"Technology"},
			RequiredSkills: []string{"python", "sql"},
		}
		b := ComparisonBreakdown(profile, in)
		assert.Equal(t, 50, b.Skills)
		assert.Equal(t, 30, b.Stipend)
		assert.Equal(t, 15, b.Location)
		assert.Equal(t, 5, b.Sector)
		assert.Equal(t, 95, b.Total) // 100 clamped to the ceiling
		assert.ElementsMatch(t, []string{"python", "sql"}, b.MatchedSkills)
	})

	t.Run("empty required skills scores zero without dividing by zero", func(t *testing.T) {
		in := models.Internship{Stipend: "₹5,000", Location: models.Location{City: "Pune"}}
		b := ComparisonBreakdown(profile, in)
		assert.Equal(t, 0, b.Skills)
		assert.Empty(t, b.MatchedSkills)
	})

	t.Run("stipend tiers", func(t *testing.T) {
		tiers := []struct {
			stipend string
			want    int
		}{
			{"₹12,000/month", 30},
			{"₹11,999", 21},
			{"₹8,000", 21},
			{"₹7,999", 12},
			{"", 12},
		}
		for _, tt := range tiers {
			b := ComparisonBreakdown(profile, models.Internship{Stipend: tt.stipend})
			assert.Equal(t, tt.want, b.Stipend, "stipend %q", tt.stipend)
		}
	})

	t.Run("location match is exact and case-sensitive", func(t *testing.T) {
		match := ComparisonBreakdown(profile, models.Internship{Location: models.Location{City: "Bangalore"}})
		assert.Equal(t, 15, match.Location)

		nearMiss := ComparisonBreakdown(profile, models.Internship{Location: models.Location{City: "bangalore"}})
		assert.Equal(t, 0, nearMiss.Location)
	})
}

func TestComparisonScore_Clamp(t *testing.T) {
	profiles := []*models.Profile{
		testProfile(),
		{}, // empty profile
		{Skills: []string{"Rust"}, DesiredLocation: models.Location{City: "Delhi"}},
	}
	listings := append(testListings(), models.Internship{ID: "empty"})

	for _, p := range profiles {
		for _, in := range listings {
			score := ComparisonScore(p, in)
			assert.GreaterOrEqual(t, score, 45)
			assert.LessOrEqual(t, score, 95)
		}
	}
}

func TestScoreInternship_FallbackGatedOnNilProfile(t *testing.T) {
	in := testListings()[0]
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		score := ScoreInternship(nil, in, rng)
		assert.GreaterOrEqual(t, score, 60)
		assert.Less(t, score, 90)
	}

	// With a profile present the deterministic scorer runs instead.
	p := testProfile()
	want := ComparisonScore(p, in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, want, ScoreInternship(p, in, rng))
	}
}

func TestFilterMatchScore(t *testing.T) {
	profile := testProfile()

	t.Run("no active categories yields zero", func(t *testing.T) {
		assert.Equal(t, 0, FilterMatchScore(profile, models.NewFilterState()))
	})

	t.Run("skills and sectors are weighted", func(t *testing.T) {
		f := models.NewFilterState()
		f.SelectedSkills = []string{"python", "sql"}
		f.SelectedSectors = []string{"Technology"}
		// Both categories fully matched: (30+40)/(30+40) = 100%.
		assert.Equal(t, 100, FilterMatchScore(profile, f))
	})

	t.Run("partial skill overlap", func(t *testing.T) {
		f := models.NewFilterState()
		f.SelectedSkills = []string{"Python", "Rust"}
		// 1 of 2 skills, only skills active: 20/40 = 50%.
		assert.Equal(t, 50, FilterMatchScore(profile, f))
	})

	t.Run("location category", func(t *testing.T) {
		f := models.NewFilterState()
		f.Location = "bangalore"
		require.Equal(t, "Bangalore", profile.DesiredCity())
		assert.Equal(t, 100, FilterMatchScore(profile, f))
	})
}
