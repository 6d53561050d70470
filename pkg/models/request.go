package models

// MatchRequest asks the ranking pipeline for personalized recommendations.
// Listings come inline or, when UseCatalog is set, from the shared catalog
// store. Filters, when present, skip smart filter generation entirely.
type MatchRequest struct {
	Profile     *Profile            `json:"profile,omitempty"`
	Internships []Internship        `json:"internships,omitempty" validate:"omitempty,dive"`
	UseCatalog  bool                `json:"use_catalog,omitempty"`
	Filters     *FilterState        `json:"filters,omitempty"`
	Options     *SmartFilterOptions `json:"options,omitempty"`
	ClientID    string              `json:"client_id,omitempty"`
}

// ApplyFiltersRequest runs the predicate engine over an inline listing set.
type ApplyFiltersRequest struct {
	Internships []Internship `json:"internships" validate:"required,dive"`
	Filters     FilterState  `json:"filters"`
}

// SmartFiltersRequest derives filter state from a candidate profile.
type SmartFiltersRequest struct {
	Profile Profile             `json:"profile" validate:"required"`
	Options *SmartFilterOptions `json:"options,omitempty"`
}

// SuggestionsRequest asks for filter refinements given the size of the
// current result set.
type SuggestionsRequest struct {
	Profile     *Profile    `json:"profile,omitempty"`
	Filters     FilterState `json:"filters"`
	ResultCount int         `json:"result_count" validate:"gte=0"`
}

// CompareRequest scores a handful of listings against one profile for the
// side-by-side comparison view.
type CompareRequest struct {
	Profile     *Profile     `json:"profile,omitempty"`
	Internships []Internship `json:"internships" validate:"required,min=1,dive"`
}

// CatalogUpsertRequest replaces or inserts listings in the catalog store.
type CatalogUpsertRequest struct {
	Internships []Internship `json:"internships" validate:"required,min=1,dive"`
}
