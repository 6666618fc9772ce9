// Package search invokes the realtime job search service and supplies the
// synthetic fallback listings shown when the service is unreachable.
package search

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/jobpulse/gateway/models"
	"github.com/jobpulse/gateway/upstream"
)

// Validation errors. Both terms are checked after trimming; no network call
// is made when either fails.
var (
	ErrEmptyQuery    = errors.New("job title is required")
	ErrEmptyLocation = errors.New("location is required")
)

// Invoker runs searches against the upstream service.
type Invoker struct {
	client  *upstream.SearchClient
	samples *SampleGenerator
	log     *zap.Logger
}

// NewInvoker creates a search invoker.
func NewInvoker(client *upstream.SearchClient, samples *SampleGenerator, log *zap.Logger) *Invoker {
	return &Invoker{client: client, samples: samples, log: log}
}

// Search validates the query terms and calls the search service. A failed
// call is returned as an error; the caller decides whether to substitute
// sample listings, so fallback data is never mistaken for real results.
func (inv *Invoker) Search(ctx context.Context, jobTitle, location string, profile *models.ResumeProfile) ([]models.JobListing, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	location = strings.TrimSpace(location)

	if jobTitle == "" {
		return nil, ErrEmptyQuery
	}
	if location == "" {
		return nil, ErrEmptyLocation
	}

	jobs, err := inv.client.Search(ctx, jobTitle, location, profile)
	if err != nil {
		inv.log.Warn("realtime search failed",
			zap.String("job_title", jobTitle),
			zap.String("location", location),
			zap.Error(err),
		)
		return nil, err
	}

	inv.log.Info("realtime search completed",
		zap.String("job_title", jobTitle),
		zap.String("location", location),
		zap.Int("jobs", len(jobs)),
	)
	return jobs, nil
}

// SampleListings returns the synthetic fallback set.
func (inv *Invoker) SampleListings() []models.JobListing {
	return inv.samples.Generate()
}
