package models

import "encoding/json"

// FlexibleStringSlice can unmarshal from either a string or []string.
// Upstream parsers are inconsistent about whether skills arrive as an
// array or a single comma-less string.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as []string first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	// Try to unmarshal as string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*f = []string{str}
		} else {
			*f = []string{}
		}
		return nil
	}

	// If both fail, return empty slice
	*f = []string{}
	return nil
}

// ResumeProfile is the normalized result of parsing an uploaded resume.
// A session holds at most one; re-uploads replace it wholesale and a reset
// clears it.
type ResumeProfile struct {
	Name       string              `json:"name" example:"Professional"`
	Category   string              `json:"category" example:"Software Developer"`
	Skills     FlexibleStringSlice `json:"skills" example:"Python,JavaScript,React"`
	Experience string              `json:"experience" example:"5+ years"`

	// Contact fields carried for the save-edits flow.
	Email string `json:"email,omitempty" example:"dev@example.com"`
	Phone string `json:"phone,omitempty" example:"+91 98765 43210"`
}

// ProfileSource tells the caller where a profile came from, so the
// presentation layer can decide whether to disclose fallback data.
type ProfileSource string

const (
	// ProfileSourceParsed means the upstream parser supplied the profile.
	ProfileSourceParsed ProfileSource = "parsed"
	// ProfileSourceCanned means the parser answered but gave no parsed_data.
	ProfileSourceCanned ProfileSource = "canned"
	// ProfileSourceOffline means the parse call itself failed.
	ProfileSourceOffline ProfileSource = "offline"
)
