package search

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCountAndShape(t *testing.T) {
	gen := NewSampleGenerator(rand.New(rand.NewSource(1)))

	jobs := gen.Generate()

	require.Len(t, jobs, SampleCount)
	for i, job := range jobs {
		assert.Contains(t, sampleTitles, job.Title)
		assert.Contains(t, sampleCompanies, job.Company)
		assert.Contains(t, sampleLocations, job.Location)
		assert.Contains(t, sampleSalaries, job.Salary)
		assert.Contains(t, samplePosted, job.Posted)
		assert.Contains(t, sampleSources, job.Source)
		assert.Equal(t, fmt.Sprintf("https://example.com/job/%d", i), job.URL)
		assert.Equal(t, sampleDescription, job.Description)
	}
}

func TestGenerateMatchRange(t *testing.T) {
	gen := NewSampleGenerator(rand.New(rand.NewSource(2)))

	for i := 0; i < 10; i++ {
		for _, job := range gen.Generate() {
			assert.GreaterOrEqual(t, job.MatchPercentage, 60)
			assert.LessOrEqual(t, job.MatchPercentage, 99)
		}
	}
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	a := NewSampleGenerator(rand.New(rand.NewSource(42)))
	b := NewSampleGenerator(rand.New(rand.NewSource(42)))

	assert.Equal(t, a.Generate(), b.Generate())
}
