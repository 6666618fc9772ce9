package search

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/jobpulse/gateway/models"
)

// SampleCount is how many synthetic listings a fallback set contains.
const SampleCount = 20

// Fixed pools the synthetic listings are drawn from.
var (
	sampleTitles    = []string{"Python Developer", "Full Stack Developer", "Frontend Engineer", "Data Scientist", "DevOps Engineer"}
	sampleCompanies = []string{"Google", "Microsoft", "Amazon", "Apple", "Netflix", "Tesla", "Meta"}
	sampleLocations = []string{"Bangalore", "Mumbai", "Delhi", "Remote", "Hyderabad", "Pune"}
	sampleSalaries  = []string{"₹50L - ₹70L", "₹60L - ₹80L", "₹40L - ₹60L", "₹70L - ₹90L"}
	samplePosted    = []string{"1 day ago", "3 days ago", "1 week ago", "2 weeks ago"}
	sampleSources   = []string{"Indeed", "LinkedIn", "Naukri", "Glassdoor"}
)

const sampleDescription = "Exciting opportunity to work with cutting-edge technology. Join our team and make an impact."

// SampleGenerator produces deterministic-shaped, randomly populated
// fallback listings.
type SampleGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampleGenerator creates a generator seeded by the given source. Tests
// pass a fixed seed.
func NewSampleGenerator(rng *rand.Rand) *SampleGenerator {
	return &SampleGenerator{rng: rng}
}

// Generate returns exactly SampleCount listings drawn from the fixed pools,
// each with a pre-populated 60-99 match percentage.
func (g *SampleGenerator) Generate() []models.JobListing {
	g.mu.Lock()
	defer g.mu.Unlock()

	jobs := make([]models.JobListing, SampleCount)
	for i := range jobs {
		jobs[i] = models.JobListing{
			Title:           sampleTitles[g.rng.Intn(len(sampleTitles))],
			Company:         sampleCompanies[g.rng.Intn(len(sampleCompanies))],
			Location:        sampleLocations[g.rng.Intn(len(sampleLocations))],
			Salary:          sampleSalaries[g.rng.Intn(len(sampleSalaries))],
			Posted:          samplePosted[g.rng.Intn(len(samplePosted))],
			Source:          sampleSources[g.rng.Intn(len(sampleSources))],
			URL:             fmt.Sprintf("https://example.com/job/%d", i),
			Description:     sampleDescription,
			MatchPercentage: g.rng.Intn(40) + 60,
		}
	}
	return jobs
}
