// Package kroger implements the search-by-term vendor adapter on top of the
// Kroger Products and Locations APIs.
package kroger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/grocery-prices/internal/adapter"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

const (
	defaultBaseURL     = "https://api.kroger.com/v1"
	defaultResultLimit = 10
	// MaxResultLimit is the largest filter.limit the Products API accepts.
	MaxResultLimit = 50
	locationsLimit = 10
)

// Client is the Kroger vendor adapter.
type Client struct {
	transport         adapter.Transport
	baseURL           string
	defaultLocationID string
	resultLimit       int
	log               *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.transport.Client = hc
	}
}

// WithRateLimiter puts every API call through r first.
func WithRateLimiter(r *adapter.RateLimiter) Option {
	return func(c *Client) {
		c.transport.Limiter = r
	}
}

// WithDefaultLocationID sets the store used when a query names none.
func WithDefaultLocationID(id string) Option {
	return func(c *Client) {
		c.defaultLocationID = id
	}
}

// WithResultLimit sets the default number of products per search.
func WithResultLimit(n int) Option {
	return func(c *Client) {
		c.resultLimit = clampLimit(n)
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a Kroger adapter that authenticates through tokens.
func NewClient(tokens adapter.TokenProvider, opts ...Option) *Client {
	c := &Client{
		transport: adapter.Transport{
			Vendor: domain.VendorKroger,
			Client: &http.Client{Timeout: 10 * time.Second},
			Tokens: tokens,
		},
		baseURL:     defaultBaseURL,
		resultLimit: defaultResultLimit,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Descriptor implements adapter.Searcher.
func (c *Client) Descriptor() adapter.Descriptor {
	return adapter.Descriptor{
		ID:                domain.VendorKroger,
		DisplayName:       "Kroger",
		Capabilities:      adapter.SearchByTerm | adapter.Locations,
		FailurePolicy:     adapter.Propagate,
		DefaultLocationID: c.defaultLocationID,
		ResultLimit:       c.resultLimit,
	}
}

// Search implements adapter.Searcher. Each returned product contributes
// one record built from its first line item.
func (c *Client) Search(ctx context.Context, q adapter.Query) ([]domain.PriceRecord, error) {
	records, err := c.search(ctx, q)
	return adapter.ApplyPolicy(c.log, c.Descriptor(), "search", records, err)
}

func (c *Client) search(ctx context.Context, q adapter.Query) ([]domain.PriceRecord, error) {
	term := strings.TrimSpace(q.Term)
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", domain.ErrValidation)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildSearchURL(term, q), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	body, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("searching kroger products: %w", err)
	}

	var resp productsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: parsing products response: %w", domain.ErrVendorRequest, err)
	}

	return ToPriceRecords(resp.Data), nil
}

func (c *Client) buildSearchURL(term string, q adapter.Query) string {
	params := url.Values{}
	params.Set("filter.term", term)

	locationID := strings.TrimSpace(q.LocationID)
	if locationID == "" {
		locationID = c.defaultLocationID
	}
	if locationID != "" {
		params.Set("filter.locationId", locationID)
	}

	limit := c.resultLimit
	if q.Limit > 0 {
		limit = clampLimit(q.Limit)
	}
	params.Set("filter.limit", strconv.Itoa(limit))

	return c.baseURL + "/products?" + params.Encode()
}

// Locations implements adapter.Locator.
func (c *Client) Locations(ctx context.Context, zip string) ([]domain.LocationRecord, error) {
	records, err := c.locations(ctx, zip)
	return adapter.ApplyPolicy(c.log, c.Descriptor(), "locations", records, err)
}

func (c *Client) locations(ctx context.Context, zip string) ([]domain.LocationRecord, error) {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return nil, fmt.Errorf("%w: zip code is required", domain.ErrValidation)
	}

	params := url.Values{}
	params.Set("filter.zipCode", zip)
	params.Set("filter.limit", strconv.Itoa(locationsLimit))

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/locations?"+params.Encode(),
		http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	body, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("listing kroger locations: %w", err)
	}

	var resp locationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: parsing locations response: %w", domain.ErrVendorRequest, err)
	}

	return ToLocationRecords(resp.Data), nil
}

// Quota implements adapter.QuotaReporter.
func (c *Client) Quota() (adapter.Quota, bool) {
	return c.transport.Quota()
}

func clampLimit(n int) int {
	switch {
	case n <= 0:
		return defaultResultLimit
	case n > MaxResultLimit:
		return MaxResultLimit
	default:
		return n
	}
}

var (
	_ adapter.Searcher      = (*Client)(nil)
	_ adapter.Locator       = (*Client)(nil)
	_ adapter.QuotaReporter = (*Client)(nil)
)
