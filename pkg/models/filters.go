package models

// Sort keys accepted by the filter engine.
const (
	SortAIRecommended = "ai-recommended"
	SortRecent        = "recent"
	SortStipendHigh   = "stipend-high"
	SortStipendLow    = "stipend-low"
	SortCompany       = "company"
	SortDeadline      = "deadline"
)

// FilterAll is the wildcard value for single-valued filter fields.
const FilterAll = "all"

// FilterState is the full set of active filter and sort criteria for one
// filtering session. String fields use "all" (or empty search) as the
// inactive value; MinStipend is a numeric string so the UI can round-trip
// it without type juggling.
type FilterState struct {
	Search          string   `json:"search"`
	Sector          string   `json:"sector"`
	Location        string   `json:"location"`
	WorkMode        string   `json:"workMode"`
	Education       string   `json:"education"`
	MinStipend      string   `json:"minStipend" validate:"omitempty,eq=all|numeric"`
	SortBy          string   `json:"sortBy"`
	SelectedSectors []string `json:"selectedSectors"`
	SelectedSkills  []string `json:"selectedSkills"`
}

// NewFilterState returns a FilterState with every criterion inactive and
// the default sort key.
func NewFilterState() FilterState {
	return FilterState{
		Sector:     FilterAll,
		Location:   FilterAll,
		WorkMode:   FilterAll,
		Education:  FilterAll,
		MinStipend: FilterAll,
		SortBy:     SortRecent,
	}
}

// FilterPatch is a partial FilterState produced by the suggestion
// heuristic. Only fields the suggestion actually changes are set.
type FilterPatch struct {
	Location       *string  `json:"location,omitempty"`
	MinStipend     *string  `json:"minStipend,omitempty"`
	SelectedSkills []string `json:"selectedSkills,omitempty"`
}

// Apply merges the patch onto a filter state and returns the result.
func (p FilterPatch) Apply(f FilterState) FilterState {
	if p.Location != nil {
		f.Location = *p.Location
	}
	if p.MinStipend != nil {
		f.MinStipend = *p.MinStipend
	}
	if p.SelectedSkills != nil {
		f.SelectedSkills = p.SelectedSkills
	}
	return f
}
