package rsvpform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"eventory/internal/domain"
	"eventory/internal/schema"
)

// HTTPSubmitter posts RSVPs to the JSON API of an Eventory server.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSubmitter returns a Submitter for the server at serverURL.
// A nil client means http.DefaultClient.
func NewHTTPSubmitter(serverURL string, client *http.Client) *HTTPSubmitter {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSubmitter{
		endpoint: strings.TrimSuffix(serverURL, "/") + "/api/rsvp",
		client:   client,
	}
}

type submitResponse struct {
	Success    bool   `json:"success"`
	ResponseID string `json:"responseId"`
}

type errorResponse struct {
	Message string         `json:"message"`
	Issues  []schema.Issue `json:"error"`
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Message    string
	Issues     []schema.Issue
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("rsvp submit: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("rsvp submit: status %d", e.StatusCode)
}

func (s *HTTPSubmitter) SubmitRsvp(ctx context.Context, in domain.SubmitRsvpInput) (string, error) {
	body, err := json.Marshal(schema.FromInput(in))
	if err != nil {
		return "", fmt.Errorf("encode rsvp: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build rsvp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("rsvp submit: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read rsvp response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serr := &StatusError{StatusCode: resp.StatusCode}
		var er errorResponse
		if json.Unmarshal(raw, &er) == nil {
			serr.Message, serr.Issues = er.Message, er.Issues
		}
		return "", serr
	}
	var out submitResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode rsvp response: %w", err)
	}
	if !out.Success {
		return "", fmt.Errorf("rsvp submit: server reported failure")
	}
	return out.ResponseID, nil
}

// ServiceSubmitter submits through an in-process RsvpService.
type ServiceSubmitter struct {
	Service domain.RsvpService
}

func (s ServiceSubmitter) SubmitRsvp(ctx context.Context, in domain.SubmitRsvpInput) (string, error) {
	resp, err := s.Service.Submit(ctx, in)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}
