package kroger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/grocery-prices/internal/adapter"
	"github.com/donaldgifford/grocery-prices/internal/adapter/kroger"
	"github.com/donaldgifford/grocery-prices/pkg/logger"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

type stubTokens struct {
	calls       atomic.Int32
	invalidated atomic.Int32
}

func (s *stubTokens) Token(context.Context) (string, error) {
	s.calls.Add(1)
	return "kr-token", nil
}

func (s *stubTokens) Invalidate(context.Context) error {
	s.invalidated.Add(1)
	return nil
}

const ribeyeResponse = `{"data":[
	{"productId":"0020807100000","description":"Kroger Beef Choice Ribeye Steak",
	 "items":[{"itemId":"1","size":"1 lb","price":{"regular":14.99,"promo":12.99}}]},
	{"productId":"0020807200000","description":"Simple Truth Ribeye",
	 "items":[{"itemId":"2","size":"12 oz","price":{"regular":16.49,"promo":0}}]}
]}`

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...kroger.Option) (*kroger.Client, *stubTokens) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := &stubTokens{}
	opts = append([]kroger.Option{
		kroger.WithBaseURL(srv.URL),
		kroger.WithHTTPClient(srv.Client()),
		kroger.WithLogger(logger.Discard()),
	}, opts...)

	return kroger.NewClient(tokens, opts...), tokens
}

func TestClient_Search(t *testing.T) {
	t.Parallel()

	c, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "Bearer kr-token", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "ribeye", q.Get("filter.term"))
		assert.Equal(t, "01400943", q.Get("filter.locationId"))
		assert.Equal(t, "10", q.Get("filter.limit"))
		_, _ = w.Write([]byte(ribeyeResponse))
	}, kroger.WithDefaultLocationID("01400943"))

	records, err := c.Search(context.Background(), adapter.Query{Term: " ribeye ", ZIP: "80911"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, domain.VendorKroger, records[0].Vendor)
	assert.Equal(t, "Kroger Beef Choice Ribeye Steak", records[0].ItemName)
	assert.Equal(t, "14.99", records[0].RegularPrice.String())
	assert.Equal(t, "12.99", records[0].PromoPrice.String())
	assert.Nil(t, records[1].PromoPrice)
	assert.Equal(t, int32(1), tokens.calls.Load())
}

func TestClient_SearchQueryShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		query        adapter.Query
		wantLimit    string
		wantLocation string
		hasLocation  bool
	}{
		{name: "default limit no location", query: adapter.Query{Term: "milk"}, wantLimit: "10"},
		{name: "custom limit", query: adapter.Query{Term: "milk", Limit: 25}, wantLimit: "25"},
		{name: "limit capped at vendor max", query: adapter.Query{Term: "milk", Limit: 500}, wantLimit: "50"},
		{
			name:         "explicit location",
			query:        adapter.Query{Term: "milk", LocationID: "70100023"},
			wantLimit:    "10",
			wantLocation: "70100023",
			hasLocation:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				assert.Equal(t, tt.wantLimit, q.Get("filter.limit"))
				assert.Equal(t, tt.hasLocation, q.Has("filter.locationId"))
				assert.Equal(t, tt.wantLocation, q.Get("filter.locationId"))
				_, _ = w.Write([]byte(`{"data":[]}`))
			})

			records, err := c.Search(context.Background(), tt.query)
			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestClient_SearchEmptyTermMakesNoCalls(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	c, tokens := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		hits.Add(1)
	})

	for _, term := range []string{"", "   "} {
		_, err := c.Search(context.Background(), adapter.Query{Term: term})
		require.ErrorIs(t, err, domain.ErrValidation)
	}

	assert.Zero(t, hits.Load())
	assert.Zero(t, tokens.calls.Load())
}

func TestClient_SearchErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		status          int
		body            string
		wantInvalidated int32
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"errors":{"reason":"down"}}`},
		{name: "unauthorized", status: http.StatusUnauthorized, wantInvalidated: 1},
		{name: "malformed body", status: http.StatusOK, body: `{"data":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, tokens := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			records, err := c.Search(context.Background(), adapter.Query{Term: "ribeye"})
			require.ErrorIs(t, err, domain.ErrVendorRequest)
			assert.Nil(t, records)
			assert.Equal(t, tt.wantInvalidated, tokens.invalidated.Load())
		})
	}
}

func TestClient_Locations(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/locations", r.URL.Path)
		assert.Equal(t, "80911", r.URL.Query().Get("filter.zipCode"))
		_, _ = w.Write([]byte(`{"data":[
			{"locationId":"62000029","chain":"KINGSOOPERS","name":"King Soopers - Fountain",
			 "address":{"addressLine1":"6910 Mesa Ridge Pkwy","city":"Fountain","state":"CO","zipCode":"80817"},
			 "distance":4.1},
			{"locationId":"62000046","chain":"KINGSOOPERS","name":"King Soopers - Security",
			 "address":{"addressLine1":"5090 Security Blvd","city":"Colorado Springs","state":"CO","zipCode":"80911"},
			 "distance":"1.2"}
		]}`))
	})

	locs, err := c.Locations(context.Background(), "80911")
	require.NoError(t, err)
	require.Len(t, locs, 2)

	assert.Equal(t, "62000029", locs[0].LocationID)
	assert.Equal(t, "62000046", locs[1].LocationID)
	require.NotNil(t, locs[1].DistanceMiles)
	assert.InDelta(t, 1.2, *locs[1].DistanceMiles, 0.0001)
}

func TestClient_LocationsEmptyZip(t *testing.T) {
	t.Parallel()

	c, tokens := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Error("unexpected vendor call")
	})

	_, err := c.Locations(context.Background(), " ")
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, tokens.calls.Load())
}

func TestClient_Descriptor(t *testing.T) {
	t.Parallel()

	c := kroger.NewClient(&stubTokens{},
		kroger.WithDefaultLocationID("01400943"),
		kroger.WithResultLimit(80),
	)

	d := c.Descriptor()
	assert.Equal(t, domain.VendorKroger, d.ID)
	assert.True(t, d.Capabilities.Has(adapter.SearchByTerm|adapter.Locations))
	assert.False(t, d.Capabilities.Has(adapter.SearchByMapping))
	assert.Equal(t, adapter.Propagate, d.FailurePolicy)
	assert.Equal(t, "01400943", d.DefaultLocationID)
	assert.Equal(t, kroger.MaxResultLimit, d.ResultLimit)

	_, ok := c.Quota()
	assert.False(t, ok)
}
