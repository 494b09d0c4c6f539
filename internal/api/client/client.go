// Package client provides a thin HTTP client for the grocery-prices API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/donaldgifford/grocery-prices/internal/aggregate"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// Client is a thin HTTP client for the grocery-prices API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client targeting the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// PricesResponse is the body of a price lookup.
type PricesResponse struct {
	Item    string                   `json:"item"`
	Zip     *string                  `json:"zip"`
	Prices  []domain.PriceRecord     `json:"prices"`
	Sources []aggregate.SourceStatus `json:"sources"`
}

// LocationsResponse is the body of a store lookup.
type LocationsResponse struct {
	Zip       string                   `json:"zip"`
	Locations []domain.LocationRecord  `json:"locations"`
	Sources   []aggregate.SourceStatus `json:"sources"`
}

// Quota is a vendor's daily call budget.
type Quota struct {
	DailyLimit int64  `json:"daily_limit"`
	DailyUsed  int64  `json:"daily_used"`
	Remaining  int64  `json:"remaining"`
	ResetAt    string `json:"reset_at"`
}

// Vendor describes a configured vendor.
type Vendor struct {
	ID                domain.VendorID `json:"id"`
	DisplayName       string          `json:"display_name"`
	Capabilities      []string        `json:"capabilities"`
	FailurePolicy     string          `json:"failure_policy"`
	DefaultLocationID string          `json:"default_location_id,omitempty"`
	ResultLimit       int             `json:"result_limit"`
	Quota             *Quota          `json:"quota,omitempty"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
	Details    string `json:"details"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("API error (HTTP %d): %s: %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// Prices looks up item near zip. zip may be empty.
func (c *Client) Prices(ctx context.Context, item, zip string) (*PricesResponse, error) {
	q := url.Values{}
	q.Set("item", item)
	if zip != "" {
		q.Set("zip", zip)
	}

	var resp PricesResponse
	if err := c.get(ctx, "/api/v1/prices?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Locations lists stores near zip.
func (c *Client) Locations(ctx context.Context, zip string) (*LocationsResponse, error) {
	q := url.Values{}
	q.Set("zip", zip)

	var resp LocationsResponse
	if err := c.get(ctx, "/api/v1/locations?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Vendors lists the configured vendors.
func (c *Client) Vendors(ctx context.Context) ([]Vendor, error) {
	var resp struct {
		Vendors []Vendor `json:"vendors"`
	}
	if err := c.get(ctx, "/api/v1/vendors", &resp); err != nil {
		return nil, err
	}
	return resp.Vendors, nil
}

// get performs a GET request and decodes the JSON response into dst.
func (c *Client) get(ctx context.Context, path string, dst any) error {
	return c.do(ctx, http.MethodGet, path, dst)
}

func (c *Client) do(ctx context.Context, method, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isConnectionRefused(err) {
			return fmt.Errorf("API server not running at %s", c.baseURL)
		}
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if json.Unmarshal(respBody, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if dst != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, dst); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func isConnectionRefused(err error) bool {
	return strings.Contains(err.Error(), "connection refused")
}
