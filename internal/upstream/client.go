// Package upstream calls the sgg.gov.ma AJAX listing endpoint that serves the
// raw Bulletin Officiel table for one content module.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sggtools/boapi/internal/domain"
	"github.com/sggtools/boapi/internal/utils"
)

// DefaultTimeout bounds one listing call. The endpoint returns the full
// dataset in one response, so it gets a longer budget than the scrape.
const DefaultTimeout = 20 * time.Second

// Record is one raw bulletin row as the upstream serializes it. The schema is
// externally owned; json.Number tolerates numeric and quoted forms for the id
// and label fields.
type Record struct {
	BoID   json.Number `json:"BoId"`
	BoNum  json.Number `json:"BoNum"`
	BoDate string      `json:"BoDate"`
	BoURL  string      `json:"BoUrl"`
}

type Client struct {
	ajaxURL string
	http    *http.Client
}

// New creates a listing client for the given AJAX endpoint URL.
func New(ajaxURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		ajaxURL: ajaxURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Listing fetches the raw bulletin rows for the module selected by ids.
// The identifiers travel as request headers, plus an empty anti-forgery token
// header the endpoint insists on seeing.
func (c *Client) Listing(ctx context.Context, ids domain.IdentifierPair) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ajaxURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build listing request: %w", err)
	}
	req.Header.Set("ModuleId", ids.ModuleID)
	req.Header.Set("TabId", ids.TabID)
	req.Header.Set("RequestVerificationToken", "")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing request failed: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("listing request returned status %d", resp.StatusCode)
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode listing response: %w", err)
	}

	return records, nil
}
