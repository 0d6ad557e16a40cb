// Package pdftext talks to the external PDF-to-text extraction service.
package pdftext

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sggtools/boapi/internal/utils"
)

// DefaultTimeout bounds one extraction call. Full-gazette PDFs are large and
// the service extracts every page, hence the generous budget.
const DefaultTimeout = 60 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

// New creates an extraction client for the given service base URL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type extractResponse struct {
	Text string `json:"text"`
}

// Extract returns the trimmed text content of the PDF at pdfURL.
// An empty result is not an error; callers decide how to signal it.
func (c *Client) Extract(ctx context.Context, pdfURL string) (string, error) {
	q := url.Values{}
	q.Set("pdfUrl", pdfURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/pdf-text-all?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build extraction request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("extraction request failed: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("extraction request returned status %d", resp.StatusCode)
	}

	var body extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode extraction response: %w", err)
	}

	return strings.TrimSpace(body.Text), nil
}
