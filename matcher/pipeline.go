package matcher

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jobpulse/gateway/models"
)

// Filter is a minimum-match threshold applied to the result view.
type Filter string

// Filter tiers.
const (
	FilterAll Filter = "all"
	Filter60  Filter = "60"
	Filter80  Filter = "80"
	Filter90  Filter = "90"
)

// ParseFilter validates a filter string from the query parameters.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, Filter60, Filter80, Filter90:
		return Filter(s), nil
	case "":
		return FilterAll, nil
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// Threshold returns the numeric minimum for a tier filter; ok is false for
// FilterAll.
func (f Filter) Threshold() (int, bool) {
	if f == FilterAll {
		return 0, false
	}
	t, err := strconv.Atoi(string(f))
	if err != nil {
		return 0, false
	}
	return t, true
}

// Sort is one of the supported result orderings.
type Sort string

// Sort orders.
const (
	SortMatch   Sort = "match"   // descending match percentage
	SortRecent  Sort = "recent"  // most recently posted first
	SortSalary  Sort = "salary"  // descending lexicographic salary string
	SortCompany Sort = "company" // ascending company name
)

// ParseSort validates a sort string from the query parameters.
func ParseSort(s string) (Sort, error) {
	switch Sort(s) {
	case SortMatch, SortRecent, SortSalary, SortCompany:
		return Sort(s), nil
	case "":
		return SortMatch, nil
	}
	return "", fmt.Errorf("unknown sort %q", s)
}

// Apply derives the displayed subset: it filters allJobs by the minimum
// match threshold and orders the result. The input slice is never mutated;
// the view must be re-derived after every change to its inputs.
func Apply(allJobs []models.JobListing, filter Filter, sortBy Sort) []models.JobListing {
	view := make([]models.JobListing, 0, len(allJobs))
	if threshold, ok := filter.Threshold(); ok {
		for _, job := range allJobs {
			if job.MatchPercentage >= threshold {
				view = append(view, job)
			}
		}
	} else {
		view = append(view, allJobs...)
	}

	now := time.Now()
	switch sortBy {
	case SortMatch:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].MatchPercentage > view[j].MatchPercentage
		})
	case SortRecent:
		sort.SliceStable(view, func(i, j int) bool {
			return parsePosted(view[i].Posted, now).After(parsePosted(view[j].Posted, now))
		})
	case SortSalary:
		// Lexicographic on the raw salary string: the literal contract of
		// the original behavior, kept even though "₹9L" outranks "₹70L".
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Salary > view[j].Salary
		})
	case SortCompany:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Company < view[j].Company
		})
	}

	return view
}

// Counts recomputes the filter tier badge totals from the full result set.
func Counts(allJobs []models.JobListing) models.TierCounts {
	counts := models.TierCounts{All: len(allJobs)}
	for _, job := range allJobs {
		if job.MatchPercentage >= 90 {
			counts.AtLeast90++
		}
		if job.MatchPercentage >= 80 {
			counts.AtLeast80++
		}
		if job.MatchPercentage >= 60 {
			counts.AtLeast60++
		}
	}
	return counts
}

// parsePosted converts a "<N> day(s)/week(s) ago" recency string to the
// implied absolute instant. Anything unparseable counts as posted now,
// which makes it sort as most recent.
func parsePosted(posted string, now time.Time) time.Time {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(posted)))
	if len(fields) < 2 {
		return now
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return now
	}

	days := n
	if strings.HasPrefix(fields[1], "week") {
		days = n * 7
	} else if !strings.HasPrefix(fields[1], "day") {
		return now
	}

	return now.AddDate(0, 0, -days)
}
