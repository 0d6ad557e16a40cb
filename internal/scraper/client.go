// Package scraper talks to the external page-scraping service that returns
// the concatenated inline <script> contents of a target page.
package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sggtools/boapi/internal/utils"
)

// DefaultTimeout bounds one scrape call.
const DefaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a scraper client for the given service base URL.
// A zero timeout falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type scrapeResponse struct {
	Result string `json:"result"`
}

// Scripts fetches the inline script text of pageURL through the scraping
// service.
func (c *Client) Scripts(ctx context.Context, pageURL string) (string, error) {
	q := url.Values{}
	q.Set("url", pageURL)
	q.Set("type", "scripts")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/scrape?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build scrape request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("scrape request failed: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("scrape request returned status %d", resp.StatusCode)
	}

	var body scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode scrape response: %w", err)
	}

	return body.Result, nil
}
