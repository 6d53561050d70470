package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saksham-engine/pkg/models"
)

func testListings() []models.Internship {
	return []models.Internship{
		{
			ID:                       "in-1",
			Title:                    "Data Science Intern",
			Company:                  "Acme Analytics",
			Location:                 models.Location{City: "Bangalore"},
			Stipend:                  "₹15,000/month",
			SectorTags:               []string{"Technology"},
			RequiredSkills:           []string{"Python", "SQL"},
			PreferredEducationLevels: []string{"Undergraduate"},
			WorkMode:                 "On-site",
			PostedDate:               "2026-07-20",
			ApplicationDeadline:      "2026-09-15",
		},
		{
			ID:             "in-2",
			Title:          "Marketing Intern",
			Company:        "Brandly",
			Location:       models.Location{City: "Mumbai"},
			Stipend:        "₹5,000/month",
			SectorTags:     []string{"Marketing"},
			RequiredSkills: []string{"Content Writing"},
			WorkMode:       "Hybrid",
			PostedDate:     "2026-08-01",
		},
		{
			ID:             "in-3",
			Title:          "Backend Intern",
			Company:        "CloudNine",
			Location:       models.Location{City: "Bangalore", Lat: ptrFloat(12.97), Lng: ptrFloat(77.59)},
			Stipend:        "₹10,000/month",
			SectorTags:     []string{"Technology"},
			RequiredSkills: []string{"Go", "SQL"},
			WorkMode:       "Remote",
			PostedDate:     "2026-06-10",
		},
	}
}

func ptrFloat(f float64) *float64 { return &f }

func TestApplyFilters_Predicates(t *testing.T) {
	listings := testListings()

	tests := []struct {
		name    string
		mutate  func(*models.FilterState)
		wantIDs []string
	}{
		{
			name:    "no active filters keeps everything",
			mutate:  func(f *models.FilterState) { f.SortBy = models.SortCompany },
			wantIDs: []string{"in-1", "in-2", "in-3"},
		},
		{
			name:    "search matches title case-insensitively",
			mutate:  func(f *models.FilterState) { f.Search = "backend" },
			wantIDs: []string{"in-3"},
		},
		{
			name:    "search matches required skills",
			mutate:  func(f *models.FilterState) { f.Search = "sql" },
			wantIDs: []string{"in-1", "in-3"},
		},
		{
			name:    "sector requires exact tag membership",
			mutate:  func(f *models.FilterState) { f.Sector = "Technology" },
			wantIDs: []string{"in-1", "in-3"},
		},
		{
			name:    "location substring against resolved city",
			mutate:  func(f *models.FilterState) { f.Location = "bangal" },
			wantIDs: []string{"in-1", "in-3"},
		},
		{
			name:    "work mode is exact",
			mutate:  func(f *models.FilterState) { f.WorkMode = "Remote" },
			wantIDs: []string{"in-3"},
		},
		{
			name:    "education membership",
			mutate:  func(f *models.FilterState) { f.Education = "Undergraduate" },
			wantIDs: []string{"in-1"},
		},
		{
			name:    "min stipend floor",
			mutate:  func(f *models.FilterState) { f.MinStipend = "10000" },
			wantIDs: []string{"in-1", "in-3"},
		},
		{
			name: "predicates compose with AND",
			mutate: func(f *models.FilterState) {
				f.Sector = "Technology"
				f.MinStipend = "12000"
			},
			wantIDs: []string{"in-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := models.NewFilterState()
			f.SortBy = models.SortCompany
			tt.mutate(&f)

			got := ApplyFilters(listings, f)

			ids := make([]string, 0, len(got))
			for _, in := range got {
				ids = append(ids, in.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)

			// Every surviving element satisfies every active predicate,
			// every dropped element fails at least one.
			for i := range listings {
				assert.Equal(t, contains(tt.wantIDs, listings[i].ID), matchesFilters(&listings[i], f))
			}
		})
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestApplyFilters_Idempotent(t *testing.T) {
	listings := testListings()
	f := models.NewFilterState()
	f.Sector = "Technology"
	f.SortBy = models.SortStipendHigh

	first := ApplyFilters(listings, f)
	second := ApplyFilters(listings, f)
	assert.Equal(t, first, second)
}

func TestApplyFilters_UnparseableStipendFloorKeepsAll(t *testing.T) {
	listings := testListings()
	f := models.NewFilterState()
	f.MinStipend = "twelve thousand"

	// An unparseable floor never rejects listings; request validation is
	// responsible for reporting the bad value to the caller.
	got := ApplyFilters(listings, f)
	assert.Len(t, got, len(listings))
}

func TestApplyFilters_SortKeys(t *testing.T) {
	listings := testListings()
	f := models.NewFilterState()

	t.Run("stipend-high descends", func(t *testing.T) {
		f.SortBy = models.SortStipendHigh
		got := ApplyFilters(listings, f)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"in-1", "in-3", "in-2"}, idsOf(got))
	})

	t.Run("stipend-low ascends", func(t *testing.T) {
		f.SortBy = models.SortStipendLow
		got := ApplyFilters(listings, f)
		assert.Equal(t, []string{"in-2", "in-3", "in-1"}, idsOf(got))
	})

	t.Run("recent descends by posted date", func(t *testing.T) {
		f.SortBy = models.SortRecent
		got := ApplyFilters(listings, f)
		assert.Equal(t, []string{"in-2", "in-1", "in-3"}, idsOf(got))
	})

	t.Run("ai-recommended without scores falls back to recency", func(t *testing.T) {
		f.SortBy = models.SortAIRecommended
		got := ApplyFilters(listings, f)
		assert.Equal(t, []string{"in-2", "in-1", "in-3"}, idsOf(got))
	})

	t.Run("missing deadline sorts last", func(t *testing.T) {
		f.SortBy = models.SortDeadline
		got := ApplyFilters(listings, f)
		require.Len(t, got, 3)
		assert.Equal(t, "in-1", got[0].ID)
		// in-2 and in-3 have no deadline and keep input order at the tail.
		assert.Equal(t, []string{"in-2", "in-3"}, idsOf(got[1:]))
	})
}

func TestApplyFilters_CompanySortStable(t *testing.T) {
	listings := []models.Internship{
		{ID: "b", Company: "B"},
		{ID: "a1", Company: "A"},
		{ID: "a2", Company: "A"},
	}
	f := models.NewFilterState()
	f.SortBy = models.SortCompany

	got := ApplyFilters(listings, f)
	assert.Equal(t, []string{"a1", "a2", "b"}, idsOf(got))
}

func TestApplyRecommendationFilters_ScoredSort(t *testing.T) {
	listings := testListings()
	recs := []models.Recommendation{
		{Internship: listings[0], Score: 61},
		{Internship: listings[1], Score: 88},
		{Internship: listings[2], Score: 73},
	}

	f := models.NewFilterState()
	f.SortBy = models.SortAIRecommended
	got := ApplyRecommendationFilters(recs, f)

	require.Len(t, got, 3)
	assert.Equal(t, 88, got[0].Score)
	assert.Equal(t, 73, got[1].Score)
	assert.Equal(t, 61, got[2].Score)

	// Predicates read through the wrapper identically to the raw shape.
	f.MinStipend = "10000"
	got = ApplyRecommendationFilters(recs, f)
	assert.Equal(t, []string{"in-3", "in-1"}, func() []string {
		ids := make([]string, len(got))
		for i, r := range got {
			ids[i] = r.Internship.ID
		}
		return ids
	}())
}

func idsOf(items []models.Internship) []string {
	ids := make([]string, len(items))
	for i, in := range items {
		ids[i] = in.ID
	}
	return ids
}
