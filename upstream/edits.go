package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jobpulse/gateway/config"
	"github.com/jobpulse/gateway/models"
)

// EditsClient talks to the resume save-edits endpoint.
type EditsClient struct {
	client
}

// NewEditsClient creates a client for the save-edits service.
func NewEditsClient(cfg *config.Config) *EditsClient {
	return &EditsClient{client: newClient(cfg.EditsServiceURL, cfg)}
}

// SaveEdits forwards edited contact details upstream. Failures keep the
// server-supplied message so the UI can show it in a blocking prompt.
func (c *EditsClient) SaveEdits(ctx context.Context, edits models.SaveEditsRequest) error {
	body, err := json.Marshal(edits)
	if err != nil {
		return fmt.Errorf("marshal edits: %w", err)
	}

	url := c.baseURL + "/api/parse-resume/save-edits"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("save edits: %w", err)
	}

	var payload struct{}
	return c.decode("save edits", resp, &payload)
}
