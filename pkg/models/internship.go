package models

import (
	"encoding/json"
	"time"
)

// Internship represents a single listing in the marketplace catalog.
// Records arrive from the ingestion side as-is: the stipend is free text
// and the location may be a bare city name or a structured object, so both
// are normalized at read time rather than at the boundary.
type Internship struct {
	ID                       string   `json:"id" validate:"required"`
	Title                    string   `json:"title"`
	Company                  string   `json:"company"`
	Location                 Location `json:"location"`
	Stipend                  string   `json:"stipend"`
	SectorTags               []string `json:"sector_tags"`
	RequiredSkills           []string `json:"required_skills"`
	PreferredEducationLevels []string `json:"preferred_education_levels"`
	WorkMode                 string   `json:"work_mode,omitempty"` // "Remote" | "On-site" | "Hybrid" | ""
	PostedDate               string   `json:"posted_date,omitempty"`
	ApplicationDeadline      string   `json:"application_deadline,omitempty"`
}

// Location is the normalized form of a listing or profile location. The
// wire format is either a plain city string or an object with optional
// coordinates/state; both decode into this struct.
type Location struct {
	City  string   `json:"city"`
	State string   `json:"state,omitempty"`
	Lat   *float64 `json:"lat,omitempty"`
	Lng   *float64 `json:"lng,omitempty"`
}

// UnmarshalJSON accepts both the string and the object shape.
func (l *Location) UnmarshalJSON(data []byte) error {
	var city string
	if err := json.Unmarshal(data, &city); err == nil {
		*l = Location{City: city}
		return nil
	}

	type plain Location
	var loc plain
	if err := json.Unmarshal(data, &loc); err != nil {
		return err
	}
	*l = Location(loc)
	return nil
}

// ResolvedCity returns the city string for matching purposes. Every filter
// and scorer reads location through this method so the two treat the field
// identically.
func (l Location) ResolvedCity() string {
	return l.City
}

// IsZero reports whether no location information is present.
func (l Location) IsZero() bool {
	return l.City == "" && l.State == "" && l.Lat == nil && l.Lng == nil
}

// Date layouts accepted for posted_date and application_deadline.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// ParseListingDate parses a listing date string leniently. The second
// return value is false when the string is empty or unparseable; callers
// treat that as the weakest value for their sort direction.
func ParseListingDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Recommendation wraps an internship with its computed compatibility score.
type Recommendation struct {
	Internship Internship `json:"internship"`
	Score      int        `json:"score"`
}
