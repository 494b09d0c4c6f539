package walmart_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/grocery-prices/internal/adapter"
	"github.com/donaldgifford/grocery-prices/internal/adapter/walmart"
	"github.com/donaldgifford/grocery-prices/pkg/logger"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

type offerMap map[string][]string

func (m offerMap) Lookup(item string) []string { return m[item] }

type stubTokens struct {
	calls atomic.Int32
	err   error
}

func (s *stubTokens) Token(context.Context) (string, error) {
	s.calls.Add(1)
	return "wm-token", s.err
}

func (s *stubTokens) Invalidate(context.Context) error { return nil }

var testOffers = offerMap{"ribeye": {"OFFER1", "OFFER2"}}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*walmart.Client, *stubTokens) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := &stubTokens{}
	c := walmart.NewClient(tokens, testOffers,
		walmart.WithBaseURL(srv.URL),
		walmart.WithHTTPClient(srv.Client()),
		walmart.WithConsumerID("consumer-123"),
		walmart.WithLogger(logger.Discard()),
	)
	return c, tokens
}

func TestClient_Search(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/affil/catalog-api/v2/product/items/price-availability/", r.URL.Path)
		assert.Equal(t, "Bearer wm-token", r.Header.Get("Authorization"))
		assert.Equal(t, "consumer-123", r.Header.Get("WM_CONSUMER.ID"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []any{"OFFER1", "OFFER2"}, body["offerIds"])
		assert.Equal(t, "80911", body["zipCode"])

		_, _ = w.Write([]byte(`{"items":[
			{"offerId":"OFFER1","itemName":"Marketside Ribeye","unitOfMeasure":"LB",
			 "currentPrice":{"currentValue":{"currencyAmount":13.47},"unitValue":{"currencyAmount":11.98},"currencyCode":"USD"},
			 "availabilityStatus":"IN_STOCK"},
			{"offerId":"OFFER2","currentPrice":{"currencyCode":"usd"},"availabilityStatus":"OUT_OF_STOCK"}
		]}`))
	})

	records, err := c.Search(context.Background(), adapter.Query{Term: "  Ribeye ", ZIP: "80911"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, domain.VendorWalmart, first.Vendor)
	assert.Equal(t, "Marketside Ribeye", first.ItemName)
	assert.Equal(t, "LB", *first.UnitLabel)
	assert.Equal(t, "13.47", first.RegularPrice.String())
	assert.Equal(t, "11.98", first.UnitPrice.String())
	assert.Nil(t, first.PromoPrice)
	assert.Equal(t, domain.AvailabilityInStock, *first.Availability)

	second := records[1]
	assert.Equal(t, "Ribeye", second.ItemName, "falls back to the queried term")
	assert.Nil(t, second.RegularPrice)
	assert.Nil(t, second.UnitPrice)
	assert.Nil(t, second.UnitLabel)
	assert.Equal(t, "USD", second.Currency)
	assert.Equal(t, domain.AvailabilityOutOfStock, *second.Availability)
}

func TestClient_SearchOmitsEmptyZip(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "zipCode")
		_, _ = w.Write([]byte(`{"items":[]}`))
	})

	records, err := c.Search(context.Background(), adapter.Query{Term: "ribeye"})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClient_UnmappedItemMakesNoNetworkCalls(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	c, tokens := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		hits.Add(1)
		t.Error("unexpected vendor call for unmapped item")
	})

	records, err := c.Search(context.Background(), adapter.Query{Term: "dragonfruit", ZIP: "80911"})
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	assert.Zero(t, hits.Load())
	assert.Zero(t, tokens.calls.Load(), "no token fetch for unmapped item")
}

func TestClient_FailuresDegrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		tokErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `oops`},
		{name: "forbidden", status: http.StatusForbidden, body: `{"errors":[{"code":"403"}]}`},
		{name: "malformed body", status: http.StatusOK, body: `{"items":[`},
		{name: "token failure", tokErr: domain.ErrAuthRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := walmart.NewClient(&stubTokens{err: tt.tokErr}, testOffers,
				walmart.WithBaseURL(srv.URL),
				walmart.WithHTTPClient(srv.Client()),
				walmart.WithLogger(logger.Discard()),
			)

			records, err := c.Search(context.Background(), adapter.Query{Term: "ribeye"})
			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestClient_EmptyTerm(t *testing.T) {
	t.Parallel()

	c := walmart.NewClient(&stubTokens{}, testOffers, walmart.WithLogger(logger.Discard()))

	_, err := c.Search(context.Background(), adapter.Query{Term: "  "})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestClient_Descriptor(t *testing.T) {
	t.Parallel()

	d := walmart.NewClient(&stubTokens{}, testOffers).Descriptor()
	assert.Equal(t, domain.VendorWalmart, d.ID)
	assert.True(t, d.Capabilities.Has(adapter.SearchByMapping))
	assert.False(t, d.Capabilities.Has(adapter.SearchByTerm))
	assert.False(t, d.Capabilities.Has(adapter.Locations))
	assert.Equal(t, adapter.Degrade, d.FailurePolicy)
}
