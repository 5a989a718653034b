package rag

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultBaseURL points at the remote NVIDIA RAG server's v1 API.
const DefaultBaseURL = "http://192.168.81.253:8081/v1"

// Client talks to the RAG server. The launcher only ever touches the
// health endpoint; everything else the server offers belongs to the chat
// app itself.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for the default server address. No request
// timeout is configured; the probe relies on whatever the default HTTP
// client does.
func NewClient() *Client {
	return &Client{BaseURL: DefaultBaseURL, HTTPClient: http.DefaultClient}
}

// HealthURL returns the full health endpoint URL.
func (c *Client) HealthURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/health"
}

// Healthy performs a single GET against the health endpoint and reports
// transport-level success. The response body is discarded and never
// inspected; there are no retries.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.HealthURL(), nil)
	if err != nil {
		return false
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// HealthDetail carries the health endpoint's raw answer for diagnostics.
type HealthDetail struct {
	StatusCode int             `json:"statusCode"`
	Body       json.RawMessage `json:"body,omitempty"`
}

// Health fetches the health endpoint and keeps the response body. Only
// `ragctl doctor` uses this; the launch path goes through Healthy alone.
func (c *Client) Health(ctx context.Context) (HealthDetail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.HealthURL(), nil)
	if err != nil {
		return HealthDetail{}, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return HealthDetail{}, fmt.Errorf("health request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return HealthDetail{StatusCode: resp.StatusCode}, fmt.Errorf("read health body: %w", err)
	}
	d := HealthDetail{StatusCode: resp.StatusCode}
	if json.Valid(body) {
		d.Body = json.RawMessage(body)
	}
	return d, nil
}
