package models

import "time"

// MatchResponse is the result of a ranking pipeline run.
type MatchResponse struct {
	Success         bool             `json:"success"`
	Recommendations []Recommendation `json:"recommendations"`
	Filters         FilterState      `json:"filters"`
	Suggestions     []Suggestion     `json:"suggestions,omitempty"`
	ProcessingTime  time.Duration    `json:"processing_time"`
	RequestID       string           `json:"request_id"`
}

// FilteredResponse is the result of a plain filter/sort pass.
type FilteredResponse struct {
	Success     bool         `json:"success"`
	Internships []Internship `json:"internships"`
	Count       int          `json:"count"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	RequestID   string       `json:"request_id"`
}

// SmartFiltersResponse carries generated filter state plus the analytics
// score of how well that state lines up with the profile.
type SmartFiltersResponse struct {
	Success    bool        `json:"success"`
	Filters    FilterState `json:"filters"`
	MatchScore int         `json:"match_score"`
	RequestID  string      `json:"request_id"`
}

// ComparisonEntry is the per-listing breakdown for the comparison view.
type ComparisonEntry struct {
	InternshipID  string   `json:"internship_id"`
	Score         int      `json:"score"`
	SkillsScore   int      `json:"skills_score"`
	StipendScore  int      `json:"stipend_score"`
	LocationScore int      `json:"location_score"`
	SectorScore   int      `json:"sector_score"`
	MatchedSkills []string `json:"matched_skills,omitempty"`
}

// CompareResponse is the result of a comparison request.
type CompareResponse struct {
	Success   bool              `json:"success"`
	Entries   []ComparisonEntry `json:"entries"`
	RequestID string            `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
