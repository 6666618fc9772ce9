// Package session owns the per-browser-session state the gateway keeps
// between requests: the active resume profile, the last search results and
// the current filter/sort selection.
package session

import (
	"sync"
	"time"

	"github.com/jobpulse/gateway/matcher"
	"github.com/jobpulse/gateway/models"
)

// State is the mutable session state. The filtered view is never stored
// here: it is always re-derived from AllJobs + Filter + Sort.
type State struct {
	mu sync.Mutex

	profile    *models.ResumeProfile
	allJobs    []models.JobListing
	filter     matcher.Filter
	sort       matcher.Sort
	generation uint64

	lastSeen time.Time
}

func newState() *State {
	return &State{
		filter:   matcher.FilterAll,
		sort:     matcher.SortMatch,
		lastSeen: time.Now(),
	}
}

func (s *State) touch() {
	s.lastSeen = time.Now()
}

// SetProfile replaces the session profile wholesale.
func (s *State) SetProfile(profile *models.ResumeProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
	s.touch()
}

// ClearProfile resets the session to the no-resume state.
func (s *State) ClearProfile() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	s.touch()
}

// Profile returns the active resume profile, or nil.
func (s *State) Profile() *models.ResumeProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// BeginSearch marks the start of a new search and returns its generation.
// Every new search supersedes the previous one.
func (s *State) BeginSearch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.touch()
	return s.generation
}

// CompleteSearch installs the results of the search with the given
// generation. Results from a superseded search are discarded, so rapid
// consecutive searches cannot interleave stale data.
func (s *State) CompleteSearch(generation uint64, jobs []models.JobListing) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return false
	}
	s.allJobs = jobs
	s.touch()
	return true
}

// SetView updates the filter/sort selection.
func (s *State) SetView(filter matcher.Filter, sortBy matcher.Sort) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
	s.sort = sortBy
	s.touch()
}

// Snapshot returns a copy of the state needed to derive a view. The jobs
// slice is copied so callers can sort without racing the session.
func (s *State) Snapshot() (*models.ResumeProfile, []models.JobListing, matcher.Filter, matcher.Sort) {
	s.mu.Lock()
	defer s.mu.Unlock()
	jobs := make([]models.JobListing, len(s.allJobs))
	copy(jobs, s.allJobs)
	return s.profile, jobs, s.filter, s.sort
}
