package models

// SearchJobsRequest represents the API request body for a realtime search.
// The query terms travel in the URL; the body carries the resume profile the
// match scorer should use. When absent, the session profile is used.
// @Description Job search request carrying the active resume profile
type SearchJobsRequest struct {
	ResumeData *ResumeProfile `json:"resume_data,omitempty"`
}

// SearchJobsResponse represents the API response for a job search.
// @Description Search results with scored listings and rendered cards
type SearchJobsResponse struct {
	Success    bool         `json:"success" example:"true"`
	Jobs       []JobListing `json:"jobs"`
	CardsHTML  string       `json:"cards_html,omitempty"`
	Counts     TierCounts   `json:"counts"`
	SampleData bool         `json:"sample_data,omitempty"` // true when synthetic fallback listings are shown
	Message    string       `json:"message,omitempty" example:"Found 20 matching jobs"`
}

// JobsViewRequest carries the filter/sort selection for the derived view.
type JobsViewRequest struct {
	Filter string `form:"filter,default=all" binding:"omitempty,matchfilter" example:"80"`
	Sort   string `form:"sort,default=match" binding:"omitempty,sortorder" example:"match"`
}

// JobsViewResponse is the re-derived filtered/sorted view over the last
// search results.
type JobsViewResponse struct {
	Jobs      []JobListing `json:"jobs"`
	CardsHTML string       `json:"cards_html,omitempty"`
	Counts    TierCounts   `json:"counts"`
	Filter    string       `json:"filter" example:"80"`
	Sort      string       `json:"sort" example:"match"`
}

// JobDetailResponse holds a single listing plus its rendered modal fragment.
type JobDetailResponse struct {
	Job        JobListing `json:"job"`
	ModalHTML  string     `json:"modal_html"`
	MatchLevel string     `json:"match_level" example:"Excellent"`
}

// ParseResumeResponse represents the result of a resume upload.
// @Description Parsed resume profile with rendered preview
type ParseResumeResponse struct {
	Profile     ResumeProfile `json:"profile"`
	Source      ProfileSource `json:"source" example:"parsed"`
	FileName    string        `json:"file_name" example:"resume.pdf"`
	PreviewHTML string        `json:"preview_html,omitempty"`
}

// SaveEditsRequest represents edited contact details forwarded to the
// upstream save-edits endpoint.
// @Description Edited resume contact fields
type SaveEditsRequest struct {
	Email  string              `json:"email" binding:"required" example:"dev@example.com"`
	Phone  string              `json:"phone" example:"+91 98765 43210"`
	Skills FlexibleStringSlice `json:"skills"`
}

// SaveEditsResponse is returned after a successful save-edits call; the page
// layer navigates to Redirect.
type SaveEditsResponse struct {
	Redirect string `json:"redirect" example:"/filtered-jobs"`
}

// ThemeRequest sets the theme preference, the only durable client state.
type ThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark" example:"dark"`
}

// ThemeResponse reports the current theme preference.
type ThemeResponse struct {
	Theme string `json:"theme" example:"dark"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"location is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
