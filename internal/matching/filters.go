package matching

import (
	"sort"
	"strconv"
	"strings"

	"saksham-engine/pkg/models"
	"saksham-engine/pkg/utils"
)

// filterActive reports whether a single-valued filter field is active.
func filterActive(value string) bool {
	return value != "" && value != models.FilterAll
}

// matchesFilters evaluates the AND-composed predicate set against one
// listing. Missing optional fields never fail the whole evaluation; they
// simply fail the predicates that need them.
func matchesFilters(in *models.Internship, f models.FilterState) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		hit := strings.Contains(strings.ToLower(in.Title), needle) ||
			strings.Contains(strings.ToLower(in.Company), needle)
		if !hit {
			for _, skill := range in.RequiredSkills {
				if strings.Contains(strings.ToLower(skill), needle) {
					hit = true
					break
				}
			}
		}
		if !hit {
			return false
		}
	}

	if filterActive(f.Sector) && !utils.Contains(in.SectorTags, f.Sector) {
		return false
	}

	if filterActive(f.Location) {
		city := strings.ToLower(in.Location.ResolvedCity())
		if !strings.Contains(city, strings.ToLower(f.Location)) {
			return false
		}
	}

	if filterActive(f.WorkMode) && in.WorkMode != f.WorkMode {
		return false
	}

	if filterActive(f.Education) && !utils.Contains(in.PreferredEducationLevels, f.Education) {
		return false
	}

	if filterActive(f.MinStipend) {
		floor, err := strconv.Atoi(f.MinStipend)
		if err == nil && ParseStipend(in.Stipend) < floor {
			return false
		}
	}

	return true
}

// applyFiltersFunc is the generic predicate engine. Both call shapes (raw
// listings and scored recommendation wrappers) share this single
// implementation, parameterized by an accessor, then stable-sorted by the
// requested key. The score accessor returns false when the element type
// carries no precomputed score, which drops "ai-recommended" back to the
// recency ordering.
func applyFiltersFunc[T any](items []T, get func(*T) *models.Internship, score func(*T) (int, bool), f models.FilterState) []T {
	filtered := make([]T, 0, len(items))
	for i := range items {
		if matchesFilters(get(&items[i]), f) {
			filtered = append(filtered, items[i])
		}
	}

	sortFiltered(filtered, get, score, f.SortBy)
	return filtered
}

// sortFiltered applies the comparator for the requested sort key. Sorting
// is stable so equal elements keep their input order.
func sortFiltered[T any](items []T, get func(*T) *models.Internship, score func(*T) (int, bool), sortBy string) {
	switch sortBy {
	case models.SortAIRecommended:
		if len(items) > 0 {
			if _, scored := score(&items[0]); scored {
				sort.SliceStable(items, func(i, j int) bool {
					si, _ := score(&items[i])
					sj, _ := score(&items[j])
					return si > sj
				})
				return
			}
		}
		fallthrough
	case models.SortRecent:
		sort.SliceStable(items, func(i, j int) bool {
			// Missing dates parse to the zero time and sort oldest.
			ti, _ := models.ParseListingDate(get(&items[i]).PostedDate)
			tj, _ := models.ParseListingDate(get(&items[j]).PostedDate)
			return ti.After(tj)
		})
	case models.SortStipendHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return ParseStipend(get(&items[i]).Stipend) > ParseStipend(get(&items[j]).Stipend)
		})
	case models.SortStipendLow:
		sort.SliceStable(items, func(i, j int) bool {
			return ParseStipend(get(&items[i]).Stipend) < ParseStipend(get(&items[j]).Stipend)
		})
	case models.SortCompany:
		sort.SliceStable(items, func(i, j int) bool {
			return get(&items[i]).Company < get(&items[j]).Company
		})
	case models.SortDeadline:
		sort.SliceStable(items, func(i, j int) bool {
			di, oki := models.ParseListingDate(get(&items[i]).ApplicationDeadline)
			dj, okj := models.ParseListingDate(get(&items[j]).ApplicationDeadline)
			if oki != okj {
				// Listings without a deadline always sort last.
				return oki
			}
			return di.Before(dj)
		})
	}
}

// ApplyFilters reduces and sorts a raw listing collection. The input slice
// is never mutated; repeated application with the same state yields the
// same output.
func ApplyFilters(items []models.Internship, f models.FilterState) []models.Internship {
	return applyFiltersFunc(items,
		func(in *models.Internship) *models.Internship { return in },
		func(*models.Internship) (int, bool) { return 0, false },
		f)
}

// ApplyRecommendationFilters reduces and sorts scored recommendation
// wrappers. Identical predicate logic to ApplyFilters, read through the
// wrapper; "ai-recommended" orders by the precomputed score.
func ApplyRecommendationFilters(recs []models.Recommendation, f models.FilterState) []models.Recommendation {
	return applyFiltersFunc(recs,
		func(r *models.Recommendation) *models.Internship { return &r.Internship },
		func(r *models.Recommendation) (int, bool) { return r.Score, true },
		f)
}
