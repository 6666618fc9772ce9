// Package matcher computes resume-to-listing match percentages and derives
// the filtered, sorted result view.
package matcher

import (
	"math"
	"strings"

	"github.com/jobpulse/gateway/models"
)

// categoryBonus is added when the profile category appears in the listing text.
const categoryBonus = 15

// Score populates match percentages on listings that do not have one yet.
// Already-scored listings are never overwritten. Without a profile the
// scorer is a no-op: listings keep whatever percentage they arrived with.
//
// For each unscored listing: base = matched skills / total skills × 100
// (50 when the profile lists no skills), +15 when the profile category is a
// substring of description+title, rounded and capped at 100.
func Score(profile *models.ResumeProfile, listings []models.JobListing) []models.JobListing {
	if profile == nil {
		return listings
	}

	for i := range listings {
		if listings[i].Scored() {
			continue
		}

		haystack := strings.ToLower(listings[i].Description + " " + listings[i].Title)

		matched := 0
		for _, skill := range profile.Skills {
			if strings.Contains(haystack, strings.ToLower(skill)) {
				matched++
			}
		}

		score := 50.0
		if len(profile.Skills) > 0 {
			score = float64(matched) / float64(len(profile.Skills)) * 100
		}

		if strings.Contains(haystack, strings.ToLower(profile.Category)) {
			score += categoryBonus
		}

		listings[i].MatchPercentage = int(math.Round(math.Min(100, score)))
	}

	return listings
}
