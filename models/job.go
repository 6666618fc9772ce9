package models

// JobListing represents a single job result returned by the search service
// or generated as a sample fallback.
type JobListing struct {
	Title       string `json:"title" example:"Python Developer"`
	Company     string `json:"company" example:"Google"`
	Location    string `json:"location" example:"Bangalore"`
	Salary      string `json:"salary" example:"₹50L - ₹70L"`
	Posted      string `json:"posted" example:"3 days ago"` // free-text recency string
	Source      string `json:"source" example:"LinkedIn"`
	URL         string `json:"url" example:"https://example.com/job/1"`
	Description string `json:"description,omitempty"`

	// MatchPercentage is 0-100. Zero means "not scored yet"; the scorer
	// populates it exactly once and never overwrites a present value.
	MatchPercentage int `json:"match_percentage,omitempty" example:"85"`
}

// Scored reports whether the listing already carries a match percentage.
func (j *JobListing) Scored() bool {
	return j.MatchPercentage > 0
}

// MatchTier buckets a match percentage into the card styling tiers.
func MatchTier(percentage int) string {
	switch {
	case percentage >= 80:
		return "high"
	case percentage >= 60:
		return "medium"
	default:
		return "low"
	}
}

// MatchLevel is the human label shown in the detail modal.
func MatchLevel(percentage int) string {
	switch {
	case percentage >= 80:
		return "Excellent"
	case percentage >= 60:
		return "Good"
	default:
		return "Fair"
	}
}

// TierCounts holds the per-filter-tier badge totals, recomputed from the
// full result set after every search.
type TierCounts struct {
	All       int `json:"all" example:"20"`
	AtLeast90 int `json:"90" example:"3"`
	AtLeast80 int `json:"80" example:"7"`
	AtLeast60 int `json:"60" example:"15"`
}
