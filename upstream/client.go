// Package upstream holds the HTTP clients for the services the gateway
// consumes: resume parsing, realtime job search and resume save-edits.
// The gateway treats any non-2xx status or malformed JSON from these
// services identically to a transport failure.
package upstream

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jobpulse/gateway/config"
	"github.com/jobpulse/gateway/utils"
)

// maxResponseBytes caps how much of an upstream body is read.
const maxResponseBytes = int64(5 * 1024 * 1024)

// Error is an upstream failure carrying the server-supplied message when
// one was present in the response body.
type Error struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Endpoint, e.Status)
}

type client struct {
	http    *http.Client
	baseURL string
}

func newClient(baseURL string, cfg *config.Config) client {
	return client{
		http:    utils.NewHTTPClient(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// decode reads and unmarshals an upstream response body into out. Non-2xx
// responses become an *Error with the best message the body offers.
func (c client) decode(endpoint string, resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s: read body: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Endpoint: endpoint, Status: resp.StatusCode, Message: extractMessage(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", endpoint, err)
	}

	return nil
}

// extractMessage pulls a human-readable message out of an error body,
// checking the field names the upstreams actually use.
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
