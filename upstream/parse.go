package upstream

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/jobpulse/gateway/config"
	"github.com/jobpulse/gateway/models"
)

// ParseClient talks to the resume parsing service.
type ParseClient struct {
	client
}

// NewParseClient creates a client for the parse service.
func NewParseClient(cfg *config.Config) *ParseClient {
	return &ParseClient{client: newClient(cfg.ParseServiceURL, cfg)}
}

// ParseResume submits the uploaded file as multipart field "file" and
// returns the parsed profile. A nil profile with a nil error means the
// service answered but supplied no parsed_data; the caller decides the
// fallback.
func (c *ParseClient) ParseResume(ctx context.Context, filename string, content []byte) (*models.ResumeProfile, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	url := c.baseURL + "/api/v1/resume/parse"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parse resume: %w", err)
	}

	var payload struct {
		ParsedData *models.ResumeProfile `json:"parsed_data"`
	}
	if err := c.decode("parse resume", resp, &payload); err != nil {
		return nil, err
	}

	return payload.ParsedData, nil
}
