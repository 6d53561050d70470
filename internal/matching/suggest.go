package matching

import (
	"strconv"

	"saksham-engine/pkg/models"
)

// Result-count thresholds for the suggestion heuristic. Counts inside
// [minHealthyResults, maxHealthyResults] need no intervention.
const (
	minHealthyResults = 5
	maxHealthyResults = 50
)

// Suggestion rule constants.
const (
	trimmedSkillCount   = 3
	highFloorCutoff     = 10000
	loweredStipendFloor = "8000"
	raisedStipendFloor  = "15000"
)

func strPtr(s string) *string { return &s }

// Suggestions inspects the current result-set size and proposes filter
// relaxations (too few results) or tightenings (too many). Rules are
// evaluated independently and any subset may fire; a healthy result size
// returns nil.
func Suggestions(profile *models.Profile, f models.FilterState, resultCount int) []models.Suggestion {
	var out []models.Suggestion

	if resultCount < minHealthyResults {
		if len(f.SelectedSkills) > trimmedSkillCount {
			out = append(out, models.Suggestion{
				Label:   "Broaden Skills",
				Filters: models.FilterPatch{SelectedSkills: f.SelectedSkills[:trimmedSkillCount]},
				Reason:  "Fewer skill filters surface more listings",
			})
		}
		if floor, err := strconv.Atoi(f.MinStipend); err == nil && floor > highFloorCutoff {
			out = append(out, models.Suggestion{
				Label:   "Lower Stipend Floor",
				Filters: models.FilterPatch{MinStipend: strPtr(loweredStipendFloor)},
				Reason:  "Your stipend floor excludes most listings",
			})
		}
		if filterActive(f.Location) {
			out = append(out, models.Suggestion{
				Label:   "Search Everywhere",
				Filters: models.FilterPatch{Location: strPtr(models.FilterAll)},
				Reason:  "Opening up the location shows remote and nearby roles",
			})
		}
		return out
	}

	if resultCount > maxHealthyResults {
		if profile != nil && len(profile.Skills) > 0 && len(f.SelectedSkills) == 0 {
			skills := profile.Skills
			if len(skills) > maxBroadSkills {
				skills = skills[:maxBroadSkills]
			}
			out = append(out, models.Suggestion{
				Label:   "Apply Your Skills",
				Filters: models.FilterPatch{SelectedSkills: skills},
				Reason:  "Filtering by your skills narrows the list to relevant roles",
			})
		}
		if f.MinStipend == models.FilterAll {
			out = append(out, models.Suggestion{
				Label:   "Raise Stipend Floor",
				Filters: models.FilterPatch{MinStipend: strPtr(raisedStipendFloor)},
				Reason:  "A stipend floor trims low-paying listings",
			})
		}
	}

	return out
}
