package models

// Location radius values for smart filter generation. Only "strict" pins
// the location filter to the profile city; the rest leave hard filtering
// off and let scoring handle proximity.
const (
	RadiusStrict   = "strict"
	RadiusNearby   = "nearby"
	RadiusRegional = "regional"
	RadiusAny      = "any"
)

// SmartFilterOptions tunes how a profile is translated into filter state.
// Boolean options are pointers so an omitted JSON field keeps its default
// (true) instead of collapsing to false.
type SmartFilterOptions struct {
	PrioritizeHighStipend *bool  `json:"prioritizeHighStipend,omitempty"`
	IncludeRemoteWork     *bool  `json:"includeRemoteWork,omitempty"`
	StrictSkillMatching   bool   `json:"strictSkillMatching,omitempty"`
	LocationRadius        string `json:"locationRadius,omitempty" validate:"omitempty,oneof=strict nearby regional any"`
}

// HighStipendPriority reports whether the generator should apply the
// default stipend floor when the profile has none. Defaults to true.
func (o *SmartFilterOptions) HighStipendPriority() bool {
	if o == nil || o.PrioritizeHighStipend == nil {
		return true
	}
	return *o.PrioritizeHighStipend
}

// RemoteWorkIncluded reports whether remote listings must stay reachable
// when no location is pinned. Defaults to true.
func (o *SmartFilterOptions) RemoteWorkIncluded() bool {
	if o == nil || o.IncludeRemoteWork == nil {
		return true
	}
	return *o.IncludeRemoteWork
}

// StrictSkills reports whether the full profile skill list is used for
// filtering instead of the capped broad-recall subset.
func (o *SmartFilterOptions) StrictSkills() bool {
	return o != nil && o.StrictSkillMatching
}

// Radius returns the effective location radius, defaulting to "nearby".
func (o *SmartFilterOptions) Radius() string {
	if o == nil || o.LocationRadius == "" {
		return RadiusNearby
	}
	return o.LocationRadius
}

// Suggestion proposes a single filter refinement based on the size of the
// current result set.
type Suggestion struct {
	Label   string      `json:"label"`
	Filters FilterPatch `json:"filters"`
	Reason  string      `json:"reason"`
}
