package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/grocery-prices/internal/adapter"
	"github.com/donaldgifford/grocery-prices/internal/aggregate"
	"github.com/donaldgifford/grocery-prices/internal/api/handlers"
	"github.com/donaldgifford/grocery-prices/internal/api/handlers/mocks"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

func TestVendorHandler_ListVendors(t *testing.T) {
	t.Parallel()

	reset := time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC)

	agg := mocks.NewMockAggregator(t)
	agg.EXPECT().Vendors().Return([]aggregate.VendorInfo{
		{
			Descriptor: adapter.Descriptor{
				ID:                domain.VendorKroger,
				DisplayName:       "Kroger",
				Capabilities:      adapter.SearchByTerm | adapter.Locations,
				FailurePolicy:     adapter.Propagate,
				DefaultLocationID: "01400943",
				ResultLimit:       10,
			},
			Quota: &adapter.Quota{Used: 3, Limit: 100, Remaining: 97, ResetAt: reset},
		},
		{
			Descriptor: adapter.Descriptor{
				ID:            domain.VendorWalmart,
				DisplayName:   "Walmart",
				Capabilities:  adapter.SearchByMapping,
				FailurePolicy: adapter.Degrade,
				ResultLimit:   20,
			},
		},
	}).Once()

	_, api := humatest.New(t)
	handlers.RegisterVendorRoutes(api, handlers.NewVendorHandler(agg))

	resp := api.Get("/api/v1/vendors")
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, `"capabilities":["search_by_term","locations"]`)
	assert.Contains(t, body, `"failure_policy":"degrade"`)
	assert.Contains(t, body, `"daily_used":3`)
	assert.Contains(t, body, `"remaining":97`)
	assert.Contains(t, body, "2026-10-15T14:30:00Z")
	assert.Contains(t, body, `"capabilities":["search_by_mapping"]`)
}
