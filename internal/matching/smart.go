package matching

import (
	"strconv"

	"saksham-engine/pkg/models"
)

// DefaultStipendFloor is applied when the profile carries no explicit
// minimum and high-stipend prioritization is on.
const DefaultStipendFloor = 12000

// maxBroadSkills caps the selected skill list when strict matching is off,
// trading precision for recall.
const maxBroadSkills = 5

// GenerateSmartFilters derives a complete filter state from a candidate
// profile. A nil options pointer means all defaults. The generated state
// always sorts by "ai-recommended" since it feeds the personalized
// ranking path.
func GenerateSmartFilters(profile models.Profile, opts *models.SmartFilterOptions) models.FilterState {
	f := models.NewFilterState()
	f.SortBy = models.SortAIRecommended

	skills := profile.Skills
	if !opts.StrictSkills() && len(skills) > maxBroadSkills {
		skills = skills[:maxBroadSkills]
	}
	// Copies keep the generated state detached from the profile's slices.
	f.SelectedSkills = append([]string(nil), skills...)
	f.SelectedSectors = append([]string(nil), profile.SectorInterests()...)

	if profile.MinStipend > 0 {
		f.MinStipend = strconv.Itoa(profile.MinStipend)
	} else if opts.HighStipendPriority() {
		f.MinStipend = strconv.Itoa(DefaultStipendFloor)
	}

	// Only a strict radius turns the location into a hard filter; wider
	// radii leave it to scoring so nearby listings are not cut outright.
	if opts.Radius() == models.RadiusStrict {
		if city := profile.DesiredCity(); city != "" {
			f.Location = city
		}
	}

	// With an unpinned radius and remote work included, the work mode
	// stays wildcard so remote listings survive the predicate pass.
	if profile.PreferredWorkMode != "" && !(opts.Radius() == models.RadiusAny && opts.RemoteWorkIncluded()) {
		f.WorkMode = profile.PreferredWorkMode
	}

	if profile.EducationLevel != "" {
		f.Education = profile.EducationLevel
	}

	return f
}

// filterPresets are named partial overlays for one-tap filter setups in
// the UI. Pure lookup data; merging happens in ApplyPreset.
var filterPresets = map[string]models.FilterState{
	"high-paying": {
		MinStipend: "15000",
		SortBy:     models.SortStipendHigh,
	},
	"remote-friendly": {
		WorkMode: "Remote",
		Location: models.FilterAll,
	},
	"skill-focused": {
		SortBy: models.SortAIRecommended,
	},
	"location-flexible": {
		Location: models.FilterAll,
		WorkMode: models.FilterAll,
	},
}

// Preset returns the named filter overlay. The boolean is false for
// unknown preset names.
func Preset(name string) (models.FilterState, bool) {
	overlay, ok := filterPresets[name]
	return overlay, ok
}

// PresetNames lists the available preset identifiers.
func PresetNames() []string {
	names := make([]string, 0, len(filterPresets))
	for name := range filterPresets {
		names = append(names, name)
	}
	return names
}

// ApplyPreset merges a preset overlay onto a base filter state. Only the
// fields the overlay sets are copied over.
func ApplyPreset(base models.FilterState, overlay models.FilterState) models.FilterState {
	if overlay.Search != "" {
		base.Search = overlay.Search
	}
	if overlay.Sector != "" {
		base.Sector = overlay.Sector
	}
	if overlay.Location != "" {
		base.Location = overlay.Location
	}
	if overlay.WorkMode != "" {
		base.WorkMode = overlay.WorkMode
	}
	if overlay.Education != "" {
		base.Education = overlay.Education
	}
	if overlay.MinStipend != "" {
		base.MinStipend = overlay.MinStipend
	}
	if overlay.SortBy != "" {
		base.SortBy = overlay.SortBy
	}
	if overlay.SelectedSectors != nil {
		base.SelectedSectors = overlay.SelectedSectors
	}
	if overlay.SelectedSkills != nil {
		base.SelectedSkills = overlay.SelectedSkills
	}
	return base
}
