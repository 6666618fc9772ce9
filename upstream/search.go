package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jobpulse/gateway/config"
	"github.com/jobpulse/gateway/models"
)

// SearchClient talks to the realtime job search service.
type SearchClient struct {
	client
}

// NewSearchClient creates a client for the search service.
func NewSearchClient(cfg *config.Config) *SearchClient {
	return &SearchClient{client: newClient(cfg.SearchServiceURL, cfg)}
}

// Search runs a realtime search for the given terms, sending the resume
// profile so the service can pre-score listings. Listings may arrive with
// or without a match percentage.
func (c *SearchClient) Search(ctx context.Context, jobTitle, location string, profile *models.ResumeProfile) ([]models.JobListing, error) {
	body, err := json.Marshal(map[string]interface{}{
		"resume_data": profile,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search body: %w", err)
	}

	params := url.Values{}
	params.Set("job_title", jobTitle)
	params.Set("location", location)

	endpoint := c.baseURL + "/api/v2/search-realtime?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}

	var payload struct {
		Success bool                `json:"success"`
		Jobs    []models.JobListing `json:"jobs"`
		Error   string              `json:"error"`
	}
	if err := c.decode("search jobs", resp, &payload); err != nil {
		return nil, err
	}

	if !payload.Success || payload.Jobs == nil {
		msg := payload.Error
		if msg == "" {
			msg = "no jobs found"
		}
		return nil, &Error{Endpoint: "search jobs", Status: resp.StatusCode, Message: msg}
	}

	return payload.Jobs, nil
}
