package models

// Profile carries the candidate attributes used to personalize filtering
// and scoring. All fields are optional; an absent profile falls back to
// non-personalized placeholder scoring instead.
type Profile struct {
	Skills            []string `json:"skills"`
	Interests         []string `json:"interests"`
	Sectors           []string `json:"sectors"`
	Location          Location `json:"location"`
	DesiredLocation   Location `json:"desiredLocation"`
	MinStipend        int      `json:"minStipend,omitempty" validate:"omitempty,gte=0"`
	MaxStipend        int      `json:"maxStipend,omitempty" validate:"omitempty,gte=0"`
	PreferredWorkMode string   `json:"preferredWorkMode,omitempty"`
	EducationLevel    string   `json:"educationLevel,omitempty"`
}

// DesiredCity resolves the city the candidate wants to work in, preferring
// the explicit desired location over the home location.
func (p *Profile) DesiredCity() string {
	if city := p.DesiredLocation.ResolvedCity(); city != "" {
		return city
	}
	return p.Location.ResolvedCity()
}

// SectorInterests returns the sector labels to match against listing
// sector tags. Onboarding writes these to either field depending on the
// flow version, so the explicit sectors list wins when both are present.
func (p *Profile) SectorInterests() []string {
	if len(p.Sectors) > 0 {
		return p.Sectors
	}
	return p.Interests
}
