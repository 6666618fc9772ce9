package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleStringSliceFromArray(t *testing.T) {
	var profile ResumeProfile
	err := json.Unmarshal([]byte(`{"skills":["Python","React"]}`), &profile)

	require.NoError(t, err)
	assert.Equal(t, FlexibleStringSlice{"Python", "React"}, profile.Skills)
}

func TestFlexibleStringSliceFromString(t *testing.T) {
	var profile ResumeProfile
	err := json.Unmarshal([]byte(`{"skills":"Python"}`), &profile)

	require.NoError(t, err)
	assert.Equal(t, FlexibleStringSlice{"Python"}, profile.Skills)
}

func TestFlexibleStringSliceFromEmptyString(t *testing.T) {
	var profile ResumeProfile
	err := json.Unmarshal([]byte(`{"skills":""}`), &profile)

	require.NoError(t, err)
	assert.Empty(t, profile.Skills)
}

func TestFlexibleStringSliceFromGarbage(t *testing.T) {
	var profile ResumeProfile
	err := json.Unmarshal([]byte(`{"skills":{"not":"a slice"}}`), &profile)

	require.NoError(t, err)
	assert.Empty(t, profile.Skills)
}

func TestScored(t *testing.T) {
	assert.False(t, (&JobListing{}).Scored())
	assert.True(t, (&JobListing{MatchPercentage: 60}).Scored())
}

func TestMatchTier(t *testing.T) {
	assert.Equal(t, "high", MatchTier(80))
	assert.Equal(t, "high", MatchTier(100))
	assert.Equal(t, "medium", MatchTier(79))
	assert.Equal(t, "medium", MatchTier(60))
	assert.Equal(t, "low", MatchTier(59))
	assert.Equal(t, "low", MatchTier(0))
}

func TestMatchLevel(t *testing.T) {
	assert.Equal(t, "Excellent", MatchLevel(85))
	assert.Equal(t, "Good", MatchLevel(65))
	assert.Equal(t, "Fair", MatchLevel(40))
}
