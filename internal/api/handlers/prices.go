package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/grocery-prices/internal/aggregate"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// Aggregator answers merged multi-vendor queries.
type Aggregator interface {
	Query(ctx context.Context, item, zip string) (*aggregate.Result, error)
	Locations(ctx context.Context, zip string) (*aggregate.LocationsResult, error)
	Vendors() []aggregate.VendorInfo
}

// PriceHandler serves merged price lookups.
type PriceHandler struct {
	agg Aggregator
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(agg Aggregator) *PriceHandler {
	return &PriceHandler{agg: agg}
}

// PricesInput holds the price lookup query parameters. item is checked by
// the handler so a missing value gets the 400 body instead of a 422.
type PricesInput struct {
	Item string `query:"item" example:"ribeye" doc:"Item name to price"`
	Zip  string `query:"zip"  example:"80911"  doc:"Optional ZIP code to price near"`
}

// PricesOutput is the response for a price lookup.
type PricesOutput struct {
	Body struct {
		Item    string                   `json:"item"    example:"ribeye"`
		Zip     *string                  `json:"zip"     doc:"Requested ZIP, null when absent"`
		Prices  []domain.PriceRecord     `json:"prices"  doc:"Price records grouped by vendor in configured order"`
		Sources []aggregate.SourceStatus `json:"sources" doc:"Per-vendor outcome of the lookup"`
	}
}

// GetPrices queries every configured vendor for the item.
func (h *PriceHandler) GetPrices(ctx context.Context, input *PricesInput) (*PricesOutput, error) {
	item := strings.TrimSpace(input.Item)
	if item == "" {
		return nil, huma.Error400BadRequest("Missing item query parameter", errItemRequired)
	}

	res, err := h.agg.Query(ctx, item, input.Zip)
	if err != nil {
		return nil, mapError(err, "Missing item query parameter", "Failed to retrieve prices")
	}

	out := &PricesOutput{}
	out.Body.Item = item
	out.Body.Zip = domain.OptionalString(input.Zip)
	out.Body.Prices = res.Prices
	out.Body.Sources = res.Sources
	return out, nil
}

// RegisterPriceRoutes registers the price lookup under its versioned path
// and the legacy /api/prices path.
func RegisterPriceRoutes(api huma.API, h *PriceHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-prices",
		Method:      http.MethodGet,
		Path:        "/api/v1/prices",
		Summary:     "Look up item prices",
		Description: "Queries every configured vendor concurrently and returns one normalized price list. A failing vendor contributes no records.",
		Tags:        []string{"prices"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.GetPrices)

	huma.Register(api, huma.Operation{
		OperationID: "get-prices-legacy",
		Method:      http.MethodGet,
		Path:        "/api/prices",
		Summary:     "Look up item prices (legacy path)",
		Tags:        []string{"prices"},
		Hidden:      true,
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.GetPrices)
}
