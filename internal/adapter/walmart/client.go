// Package walmart implements the mapping-only vendor adapter on top of the
// Walmart Affiliate price-availability API. Items are looked up by offer ID,
// so a term without a configured mapping has no Walmart data.
package walmart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/donaldgifford/grocery-prices/internal/adapter"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

const (
	defaultBaseURL    = "https://developer.api.walmart.com/api-proxy/service"
	priceAvailability = "/affil/catalog-api/v2/product/items/price-availability/"
	consumerIDHeader  = "WM_CONSUMER.ID"
	// MaxOfferIDs is the most offer IDs sent in one price-availability call.
	MaxOfferIDs = 20
)

// OfferLookup resolves a normalized item name to Walmart offer IDs.
type OfferLookup interface {
	Lookup(item string) []string
}

// Client is the Walmart vendor adapter.
type Client struct {
	transport  adapter.Transport
	offers     OfferLookup
	baseURL    string
	consumerID string
	log        *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default API proxy base URL.
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

// WithConsumerID sets the WM_CONSUMER.ID sent with price calls.
func WithConsumerID(id string) Option {
	return func(c *Client) {
		c.consumerID = id
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a Walmart adapter that resolves items through offers.
func NewClient(tokens adapter.TokenProvider, offers OfferLookup, opts ...Option) *Client {
	c := &Client{
		transport: adapter.Transport{
			Vendor: domain.VendorWalmart,
			Client: &http.Client{Timeout: 10 * time.Second},
			Tokens: tokens,
		},
		offers:  offers,
		baseURL: defaultBaseURL,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Descriptor implements adapter.Searcher.
func (c *Client) Descriptor() adapter.Descriptor {
	return adapter.Descriptor{
		ID:            domain.VendorWalmart,
		DisplayName:   "Walmart",
		Capabilities:  adapter.SearchByMapping,
		FailurePolicy: adapter.Degrade,
		ResultLimit:   MaxOfferIDs,
	}
}

// Search implements adapter.Searcher. An unmapped term returns an empty
// result without touching the network. Vendor faults degrade to an empty
// result; only an empty term is an error.
func (c *Client) Search(ctx context.Context, q adapter.Query) ([]domain.PriceRecord, error) {
	term := strings.TrimSpace(q.Term)
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", domain.ErrValidation)
	}

	offerIDs := c.offers.Lookup(domain.NormalizeItemName(term))
	if len(offerIDs) == 0 {
		c.log.Debug("no walmart offer mapping for item", "item", term)
		return []domain.PriceRecord{}, nil
	}
	if len(offerIDs) > MaxOfferIDs {
		offerIDs = offerIDs[:MaxOfferIDs]
	}

	records, err := c.fetch(ctx, term, offerIDs, strings.TrimSpace(q.ZIP))
	return adapter.ApplyPolicy(c.log, c.Descriptor(), "search", records, err)
}

func (c *Client) fetch(ctx context.Context, term string, offerIDs []string, zip string) ([]domain.PriceRecord, error) {
	payload, err := json.Marshal(priceAvailabilityRequest{OfferIDs: offerIDs, ZipCode: zip})
	if err != nil {
		return nil, fmt.Errorf("encoding price request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+priceAvailability,
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.consumerID != "" {
		req.Header[consumerIDHeader] = []string{c.consumerID}
	}

	body, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetching walmart price availability: %w", err)
	}

	var resp priceAvailabilityResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: parsing price availability response: %w", domain.ErrVendorRequest, err)
	}

	records := ToPriceRecords(resp.Items, term)
	if len(records) > len(offerIDs) {
		records = records[:len(offerIDs)]
	}
	return records, nil
}

// Quota implements adapter.QuotaReporter.
func (c *Client) Quota() (adapter.Quota, bool) {
	return c.transport.Quota()
}

var (
	_ adapter.Searcher      = (*Client)(nil)
	_ adapter.QuotaReporter = (*Client)(nil)
)
