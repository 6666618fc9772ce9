package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpulse/gateway/models"
)

func TestCardsEscapesHostileFields(t *testing.T) {
	jobs := []models.JobListing{
		{
			Title:           `<script>alert("xss")</script>`,
			Company:         `"quoted" & co`,
			Location:        "Remote",
			MatchPercentage: 85,
		},
	}

	html, err := Cards(jobs)

	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&amp; co")
}

func TestCardsIndexAndTier(t *testing.T) {
	jobs := []models.JobListing{
		{Title: "A", MatchPercentage: 92},
		{Title: "B", MatchPercentage: 74},
		{Title: "C", MatchPercentage: 45},
	}

	html, err := Cards(jobs)

	require.NoError(t, err)
	for i, job := range jobs {
		assert.Contains(t, html, fmt.Sprintf(`data-index="%d"`, i))
		assert.Contains(t, html, fmt.Sprintf("match-percentage %s", models.MatchTier(job.MatchPercentage)))
	}
	assert.Contains(t, html, "width: 92%")
}

func TestCardsEmpty(t *testing.T) {
	html, err := Cards(nil)

	require.NoError(t, err)
	assert.Empty(t, html)
}

func TestModal(t *testing.T) {
	job := models.JobListing{
		Title:           "Python Developer",
		Company:         "Google",
		Location:        "Bangalore",
		Salary:          "₹50L - ₹70L",
		Posted:          "3 days ago",
		Source:          "LinkedIn",
		URL:             "https://example.com/job/1",
		Description:     "Build backend services.",
		MatchPercentage: 85,
	}

	html, err := Modal(job)

	require.NoError(t, err)
	assert.Contains(t, html, "<h2>Python Developer</h2>")
	assert.Contains(t, html, "85% (Excellent)")
	assert.Contains(t, html, "Build backend services.")
	assert.Contains(t, html, `href="https://example.com/job/1"`)
	assert.Contains(t, html, `rel="noopener noreferrer"`)
	assert.Contains(t, html, "Apply on LinkedIn")
}

func TestModalDescriptionFallback(t *testing.T) {
	job := models.JobListing{Title: "DevOps Engineer", Source: "Indeed", MatchPercentage: 70}

	html, err := Modal(job)

	require.NoError(t, err)
	assert.Contains(t, html, "Click below to apply on Indeed")
	assert.Contains(t, html, "70% (Good)")
}

func TestPreviewSkillCap(t *testing.T) {
	profile := models.ResumeProfile{
		Name:       "Jane Doe",
		Category:   "Software Developer",
		Experience: "5+ years",
		Skills: models.FlexibleStringSlice{
			"Go", "Python", "JavaScript", "React", "Node.js",
			"SQL", "Docker", "Kubernetes", "Terraform", "AWS",
		},
	}

	html, err := Preview(profile, "resume.pdf")

	require.NoError(t, err)
	assert.Contains(t, html, "resume.pdf")
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, `<span class="skill-tag">Docker</span>`)
	assert.NotContains(t, html, "Terraform")
	assert.NotContains(t, html, "AWS")
	assert.Contains(t, html, "+2 more")
}

func TestPreviewFewSkillsNoMoreTag(t *testing.T) {
	profile := models.ResumeProfile{
		Name:   "Jane Doe",
		Skills: models.FlexibleStringSlice{"Go", "SQL"},
	}

	html, err := Preview(profile, "resume.txt")

	require.NoError(t, err)
	assert.Contains(t, html, `<span class="skill-tag">Go</span>`)
	assert.Contains(t, html, `<span class="skill-tag">SQL</span>`)
	assert.NotContains(t, html, "more")
}

func TestPreviewEscapesSkillTags(t *testing.T) {
	profile := models.ResumeProfile{
		Name:   "Jane Doe",
		Skills: models.FlexibleStringSlice{"<img src=x onerror=alert(1)>"},
	}

	html, err := Preview(profile, "resume.txt")

	require.NoError(t, err)
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "&lt;img")
}
