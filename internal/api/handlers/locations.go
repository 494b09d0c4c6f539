package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/grocery-prices/internal/aggregate"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

var (
	errItemRequired = errors.New("the item query parameter is required")
	errZipRequired  = errors.New("the zip query parameter is required")
)

// LocationHandler serves store lookups.
type LocationHandler struct {
	agg Aggregator
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(agg Aggregator) *LocationHandler {
	return &LocationHandler{agg: agg}
}

// LocationsInput holds the store lookup query parameters.
type LocationsInput struct {
	Zip string `query:"zip" doc:"ZIP code to search near" example:"80911"`
}

// LocationsOutput is the response for a store lookup.
type LocationsOutput struct {
	Body struct {
		Zip       string                   `json:"zip"       example:"80911"`
		Locations []domain.LocationRecord  `json:"locations" doc:"Stores in vendor-returned order"`
		Sources   []aggregate.SourceStatus `json:"sources"   doc:"Per-vendor outcome of the lookup"`
	}
}

// GetLocations lists stores near the ZIP from every locations-capable vendor.
func (h *LocationHandler) GetLocations(ctx context.Context, input *LocationsInput) (*LocationsOutput, error) {
	zip := strings.TrimSpace(input.Zip)
	if zip == "" {
		return nil, huma.Error400BadRequest("Missing zip query parameter", errZipRequired)
	}

	res, err := h.agg.Locations(ctx, zip)
	if err != nil {
		return nil, mapError(err, "Missing zip query parameter", "Failed to retrieve locations")
	}

	out := &LocationsOutput{}
	out.Body.Zip = zip
	out.Body.Locations = res.Locations
	out.Body.Sources = res.Sources
	return out, nil
}

// RegisterLocationRoutes registers the store lookup under its versioned
// path and the legacy /api/locations path.
func RegisterLocationRoutes(api huma.API, h *LocationHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-locations",
		Method:      http.MethodGet,
		Path:        "/api/v1/locations",
		Summary:     "Find stores near a ZIP",
		Description: "Returns stores from every vendor that supports location search.",
		Tags:        []string{"locations"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.GetLocations)

	huma.Register(api, huma.Operation{
		OperationID: "get-locations-legacy",
		Method:      http.MethodGet,
		Path:        "/api/locations",
		Summary:     "Find stores near a ZIP (legacy path)",
		Tags:        []string{"locations"},
		Hidden:      true,
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.GetLocations)
}
