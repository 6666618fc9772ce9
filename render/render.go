// Package render produces the HTML fragments the page layer injects: job
// summary cards, the detail modal and the resume preview. All interpolation
// goes through html/template, so every user- or server-supplied field is
// contextually escaped. That is a security property, not styling.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jobpulse/gateway/models"
)

// previewSkillLimit caps the skill tags shown in the resume preview.
const previewSkillLimit = 8

var fragments = template.Must(template.New("fragments").Funcs(template.FuncMap{
	"tier":  models.MatchTier,
	"level": models.MatchLevel,
}).Parse(`
{{define "card"}}<div class="job-card" data-index="{{.Index}}">
  <div class="job-info">
    <h3>{{.Job.Title}}</h3>
    <p class="job-company">{{.Job.Company}}</p>
    <div class="job-meta">
      <span class="job-location">{{.Job.Location}}</span>
      <span class="job-salary">{{.Job.Salary}}</span>
      <span class="job-posted">{{.Job.Posted}}</span>
      <span class="job-source">{{.Job.Source}}</span>
    </div>
  </div>
  <div class="match-score">
    <div class="match-percentage {{tier .Job.MatchPercentage}}">{{.Job.MatchPercentage}}%</div>
    <div class="match-label">Match</div>
    <div class="match-bar"><div class="match-fill" style="width: {{.Job.MatchPercentage}}%"></div></div>
  </div>
</div>{{end}}

{{define "modal"}}<div class="modal-body">
  <h2>{{.Title}}</h2>
  <p class="modal-company">{{.Company}}</p>
  <dl class="modal-facts">
    <dt>Location</dt><dd>{{.Location}}</dd>
    <dt>Salary</dt><dd>{{.Salary}}</dd>
    <dt>Posted</dt><dd>{{.Posted}}</dd>
    <dt>Your Match</dt><dd>{{.MatchPercentage}}% ({{level .MatchPercentage}})</dd>
  </dl>
  <p class="modal-description">{{if .Description}}{{.Description}}{{else}}Click below to apply on {{.Source}}{{end}}</p>
  <a class="btn-primary" href="{{.URL}}" target="_blank" rel="noopener noreferrer">Apply on {{.Source}}</a>
</div>{{end}}

{{define "preview"}}<div class="resume-preview">
  <p class="resume-file">{{.FileName}}</p>
  <p class="resume-name">{{.Profile.Name}}</p>
  <p class="resume-category">{{.Profile.Category}}</p>
  <p class="resume-experience">{{.Profile.Experience}}</p>
  <div class="resume-skills">{{range .Skills}}<span class="skill-tag">{{.}}</span>{{end}}{{if gt .MoreCount 0}}<span class="skill-tag">+{{.MoreCount}} more</span>{{end}}</div>
</div>{{end}}
`))

type cardData struct {
	Index int
	Job   models.JobListing
}

type previewData struct {
	FileName  string
	Profile   models.ResumeProfile
	Skills    []string
	MoreCount int
}

// Cards renders the filtered, sorted listings as summary card markup. Card
// indexes refer to positions in the rendered view.
func Cards(jobs []models.JobListing) (string, error) {
	var sb strings.Builder
	for i, job := range jobs {
		if err := fragments.ExecuteTemplate(&sb, "card", cardData{Index: i, Job: job}); err != nil {
			return "", fmt.Errorf("render card %d: %w", i, err)
		}
	}
	return sb.String(), nil
}

// Modal renders the detail view for a single listing.
func Modal(job models.JobListing) (string, error) {
	var sb strings.Builder
	if err := fragments.ExecuteTemplate(&sb, "modal", job); err != nil {
		return "", fmt.Errorf("render modal: %w", err)
	}
	return sb.String(), nil
}

// Preview renders the uploaded-resume summary: file name, parsed fields and
// up to eight skill tags with a "+N more" indicator when truncated.
func Preview(profile models.ResumeProfile, fileName string) (string, error) {
	data := previewData{
		FileName: fileName,
		Profile:  profile,
		Skills:   profile.Skills,
	}
	if len(profile.Skills) > previewSkillLimit {
		data.Skills = profile.Skills[:previewSkillLimit]
		data.MoreCount = len(profile.Skills) - previewSkillLimit
	}

	var sb strings.Builder
	if err := fragments.ExecuteTemplate(&sb, "preview", data); err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return sb.String(), nil
}
