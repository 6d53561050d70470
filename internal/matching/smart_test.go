package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saksham-engine/pkg/models"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerateSmartFilters_Defaults(t *testing.T) {
	profile := models.Profile{
		Skills:          []string{"Python", "SQL", "Excel", "Tableau", "R", "Spark", "Pandas"},
		Interests:       []string{"Technology"},
		DesiredLocation: models.Location{City: "Bangalore"},
	}

	f := GenerateSmartFilters(profile, nil)

	assert.Equal(t, models.SortAIRecommended, f.SortBy)
	// Broad recall: capped at the first five skills.
	assert.Equal(t, []string{"Python", "SQL", "Excel", "Tableau", "R"}, f.SelectedSkills)
	assert.Equal(t, []string{"Technology"}, f.SelectedSectors)
	// No explicit floor on the profile, prioritization on by default.
	assert.Equal(t, "12000", f.MinStipend)
	// Nearby radius never pins a hard location filter.
	assert.Equal(t, models.FilterAll, f.Location)
	assert.Equal(t, models.FilterAll, f.Education)
}

func TestGenerateSmartFilters_Options(t *testing.T) {
	profile := models.Profile{
		Skills:            []string{"Python", "SQL", "Excel", "Tableau", "R", "Spark"},
		DesiredLocation:   models.Location{City: "Pune"},
		MinStipend:        9000,
		PreferredWorkMode: "Remote",
		EducationLevel:    "Undergraduate",
	}

	t.Run("profile floor wins over the default", func(t *testing.T) {
		f := GenerateSmartFilters(profile, nil)
		assert.Equal(t, "9000", f.MinStipend)
	})

	t.Run("stipend prioritization off leaves the floor open", func(t *testing.T) {
		p := profile
		p.MinStipend = 0
		f := GenerateSmartFilters(p, &models.SmartFilterOptions{PrioritizeHighStipend: boolPtr(false)})
		assert.Equal(t, models.FilterAll, f.MinStipend)
	})

	t.Run("strict skill matching keeps the full list", func(t *testing.T) {
		f := GenerateSmartFilters(profile, &models.SmartFilterOptions{StrictSkillMatching: true})
		assert.Len(t, f.SelectedSkills, 6)
	})

	t.Run("strict radius pins the profile city", func(t *testing.T) {
		f := GenerateSmartFilters(profile, &models.SmartFilterOptions{LocationRadius: models.RadiusStrict})
		assert.Equal(t, "Pune", f.Location)
	})

	t.Run("any radius with remote work keeps work mode open", func(t *testing.T) {
		f := GenerateSmartFilters(profile, &models.SmartFilterOptions{LocationRadius: models.RadiusAny})
		assert.Equal(t, models.FilterAll, f.WorkMode)
	})

	t.Run("preferred work mode applies otherwise", func(t *testing.T) {
		f := GenerateSmartFilters(profile, nil)
		assert.Equal(t, "Remote", f.WorkMode)
	})

	t.Run("education level carries over", func(t *testing.T) {
		f := GenerateSmartFilters(profile, nil)
		assert.Equal(t, "Undergraduate", f.Education)
	})
}

func TestGenerateSmartFilters_DetachedFromProfile(t *testing.T) {
	profile := models.Profile{
		Skills:  []string{"go", "sql"},
		Sectors: []string{"technology"},
	}

	f := GenerateSmartFilters(profile, nil)
	f.SelectedSkills[0] = "rust"
	f.SelectedSectors[0] = "finance"

	assert.Equal(t, []string{"go", "sql"}, profile.Skills)
	assert.Equal(t, []string{"technology"}, profile.Sectors)
}

func TestPresets(t *testing.T) {
	for _, name := range []string{"high-paying", "remote-friendly", "skill-focused", "location-flexible"} {
		overlay, ok := Preset(name)
		require.True(t, ok, name)
		merged := ApplyPreset(models.NewFilterState(), overlay)
		assert.NotEqual(t, models.FilterState{}, merged)
	}

	_, ok := Preset("unknown")
	assert.False(t, ok)

	t.Run("overlay only replaces set fields", func(t *testing.T) {
		base := models.NewFilterState()
		base.Search = "design"
		overlay, _ := Preset("high-paying")
		merged := ApplyPreset(base, overlay)
		assert.Equal(t, "design", merged.Search)
		assert.Equal(t, "15000", merged.MinStipend)
		assert.Equal(t, models.SortStipendHigh, merged.SortBy)
	})
}

// End-to-end: smart filter generation feeding the predicate engine.
func TestSmartFilterPipeline(t *testing.T) {
	profile := models.Profile{
		Skills:          []string{"Python", "SQL"},
		Interests:       []string{"Technology"},
		DesiredLocation: models.Location{City: "Bangalore"},
		MinStipend:      0,
	}

	listings := []models.Internship{
		{
			ID:             "match",
			Title:          "Data Intern",
			Company:        "Acme",
			Location:       models.Location{City: "Bangalore"},
			Stipend:        "₹15,000/month",
			SectorTags:     []string{"Technology"},
			RequiredSkills: []string{"Python", "SQL"},
		},
		{
			ID:             "unrelated",
			Title:          "Sales Intern",
			Company:        "Other Co",
			Location:       models.Location{City: "Mumbai"},
			Stipend:        "₹5,000/month",
			SectorTags:     []string{"Sales"},
			RequiredSkills: []string{"Negotiation"},
		},
	}

	f := GenerateSmartFilters(profile, &models.SmartFilterOptions{LocationRadius: models.RadiusNearby})

	assert.Subset(t, f.SelectedSkills, []string{"Python", "SQL"})
	assert.Equal(t, models.FilterAll, f.Location)
	// Profile floor is falsy, so the default kicks in.
	assert.Equal(t, "12000", f.MinStipend)

	got := ApplyFilters(listings, f)
	require.Len(t, got, 1)
	assert.Equal(t, "match", got[0].ID)
}
