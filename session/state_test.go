package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpulse/gateway/matcher"
	"github.com/jobpulse/gateway/models"
)

func TestStateDefaults(t *testing.T) {
	state := newState()

	profile, jobs, filter, sortBy := state.Snapshot()
	assert.Nil(t, profile)
	assert.Empty(t, jobs)
	assert.Equal(t, matcher.FilterAll, filter)
	assert.Equal(t, matcher.SortMatch, sortBy)
}

func TestStateProfileLifecycle(t *testing.T) {
	state := newState()

	state.SetProfile(&models.ResumeProfile{Name: "Jane"})
	require.NotNil(t, state.Profile())
	assert.Equal(t, "Jane", state.Profile().Name)

	state.ClearProfile()
	assert.Nil(t, state.Profile())
}

func TestCompleteSearchDiscardsSuperseded(t *testing.T) {
	state := newState()

	first := state.BeginSearch()
	second := state.BeginSearch()

	stale := []models.JobListing{{Title: "Stale"}}
	fresh := []models.JobListing{{Title: "Fresh"}}

	assert.True(t, state.CompleteSearch(second, fresh))
	assert.False(t, state.CompleteSearch(first, stale))

	_, jobs, _, _ := state.Snapshot()
	require.Len(t, jobs, 1)
	assert.Equal(t, "Fresh", jobs[0].Title)
}

func TestCompleteSearchLateWinnerAfterEarlyLoser(t *testing.T) {
	state := newState()

	first := state.BeginSearch()
	second := state.BeginSearch()

	assert.False(t, state.CompleteSearch(first, []models.JobListing{{Title: "Stale"}}))
	assert.True(t, state.CompleteSearch(second, []models.JobListing{{Title: "Fresh"}}))

	_, jobs, _, _ := state.Snapshot()
	require.Len(t, jobs, 1)
	assert.Equal(t, "Fresh", jobs[0].Title)
}

func TestSetView(t *testing.T) {
	state := newState()

	state.SetView(matcher.Filter80, matcher.SortCompany)

	_, _, filter, sortBy := state.Snapshot()
	assert.Equal(t, matcher.Filter80, filter)
	assert.Equal(t, matcher.SortCompany, sortBy)
}

func TestSnapshotCopiesJobs(t *testing.T) {
	state := newState()
	gen := state.BeginSearch()
	state.CompleteSearch(gen, []models.JobListing{{Title: "Original"}})

	_, jobs, _, _ := state.Snapshot()
	jobs[0].Title = "Mutated"

	_, again, _, _ := state.Snapshot()
	assert.Equal(t, "Original", again[0].Title)
}
