package matching

import (
	"math"
	"math/rand"
	"strconv"
	"strings"

	"saksham-engine/pkg/models"
	"saksham-engine/pkg/utils"
)

// Comparison scorer weights. They must sum to 100; the displayed score is
// additionally clamped to [45, 95] so the comparison view never shows a
// listing as hopeless or as a perfect match.
const (
	skillsWeight   = 50
	stipendWeight  = 30
	locationWeight = 15
	sectorWeight   = 5

	scoreFloor = 45
	scoreCeil  = 95
)

// Stipend tiers for the comparison scorer. Tiered rather than linear:
// amounts at or above the high tier earn the full stipend weight, the mid
// tier 70% of it, everything below 40%.
const (
	highStipendTier = 12000
	midStipendTier  = 8000
)

// Breakdown carries the weighted sub-scores behind a comparison score.
type Breakdown struct {
	Skills        int
	Stipend       int
	Location      int
	Sector        int
	Total         int
	MatchedSkills []string
}

// ComparisonBreakdown computes the per-category sub-scores between a
// profile and a listing. The total is clamped to [scoreFloor, scoreCeil].
func ComparisonBreakdown(profile *models.Profile, in models.Internship) Breakdown {
	var b Breakdown

	// Skills: share of required skills the candidate has, case-insensitive.
	// Denominator floors at 1 so a listing without requirements scores 0
	// here instead of dividing by zero.
	den := len(in.RequiredSkills)
	if den == 0 {
		den = 1
	}
	for _, skill := range in.RequiredSkills {
		if utils.ContainsFold(profile.Skills, skill) {
			b.MatchedSkills = append(b.MatchedSkills, skill)
		}
	}
	b.Skills = int(math.Round(float64(len(b.MatchedSkills)) / float64(den) * skillsWeight))

	switch amount := ParseStipend(in.Stipend); {
	case amount >= highStipendTier:
		b.Stipend = stipendWeight
	case amount >= midStipendTier:
		b.Stipend = int(math.Round(stipendWeight * 0.7))
	default:
		b.Stipend = int(math.Round(stipendWeight * 0.4))
	}

	// Exact, case-sensitive city equality. The predicate engine does
	// case-insensitive substring matching instead; the asymmetry is kept
	// deliberately so the displayed numbers do not shift.
	if profile.DesiredCity() == in.Location.ResolvedCity() {
		b.Location = locationWeight
	}

	sectorDen := len(in.SectorTags)
	if sectorDen == 0 {
		sectorDen = 1
	}
	sectorHits := 0
	for _, tag := range in.SectorTags {
		if utils.Contains(profile.SectorInterests(), tag) {
			sectorHits++
		}
	}
	b.Sector = int(math.Round(float64(sectorHits) / float64(sectorDen) * sectorWeight))

	total := b.Skills + b.Stipend + b.Location + b.Sector
	if total < scoreFloor {
		total = scoreFloor
	}
	if total > scoreCeil {
		total = scoreCeil
	}
	b.Total = total
	return b
}

// ComparisonScore computes the 0-100 compatibility score shown in the
// comparison view. Requires a profile; the nil-profile placeholder path
// lives in ScoreInternship.
func ComparisonScore(profile *models.Profile, in models.Internship) int {
	return ComparisonBreakdown(profile, in).Total
}

// FallbackScore returns a placeholder score in [60, 90) for sessions
// without a profile. It must never be used when personalization data
// exists, so callers go through ScoreInternship.
func FallbackScore(rng *rand.Rand) int {
	return 60 + rng.Intn(30)
}

// ScoreInternship is the single entry point for per-listing scoring: real
// comparison scoring when a profile is present, the random placeholder
// otherwise.
func ScoreInternship(profile *models.Profile, in models.Internship, rng *rand.Rand) int {
	if profile == nil {
		return FallbackScore(rng)
	}
	return ComparisonScore(profile, in)
}

// Filter match scorer weights. This is the analytics-side scorer with its
// own distribution; it is intentionally not unified with the comparison
// scorer since the two feed different surfaces.
const (
	fmSectorsWeight  = 30
	fmSkillsWeight   = 40
	fmLocationWeight = 20
	fmStipendWeight  = 10
)

// FilterMatchScore measures how well a filter state lines up with a
// profile, as a percentage of the weight of the categories that are
// active. Returns 0 when no category applies. No clamp.
func FilterMatchScore(profile *models.Profile, f models.FilterState) int {
	score, maxScore := 0.0, 0.0

	if len(f.SelectedSectors) > 0 {
		maxScore += fmSectorsWeight
		hits := 0
		for _, sector := range f.SelectedSectors {
			if utils.Contains(profile.SectorInterests(), sector) {
				hits++
			}
		}
		score += float64(hits) / float64(len(f.SelectedSectors)) * fmSectorsWeight
	}

	if len(f.SelectedSkills) > 0 {
		maxScore += fmSkillsWeight
		hits := 0
		for _, skill := range f.SelectedSkills {
			if utils.ContainsFold(profile.Skills, skill) {
				hits++
			}
		}
		score += float64(hits) / float64(len(f.SelectedSkills)) * fmSkillsWeight
	}

	if filterActive(f.Location) {
		maxScore += fmLocationWeight
		if strings.EqualFold(f.Location, profile.DesiredCity()) {
			score += fmLocationWeight
		}
	}

	if filterActive(f.MinStipend) {
		maxScore += fmStipendWeight
		if floor, err := strconv.Atoi(f.MinStipend); err == nil && profile.MinStipend > 0 && floor >= profile.MinStipend {
			score += fmStipendWeight
		}
	}

	if maxScore == 0 {
		return 0
	}
	return int(math.Round(score / maxScore * 100))
}
