package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// VendorHandler reports the configured vendors.
type VendorHandler struct {
	agg Aggregator
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(agg Aggregator) *VendorHandler {
	return &VendorHandler{agg: agg}
}

// QuotaStatus is a vendor's call budget for the current 24-hour window.
type QuotaStatus struct {
	DailyLimit int64     `json:"daily_limit" example:"10000"                doc:"Configured daily API call limit"`
	DailyUsed  int64     `json:"daily_used"  example:"142"                  doc:"API calls used in the current 24-hour window"`
	Remaining  int64     `json:"remaining"   example:"9858"                 doc:"API calls remaining in the current window"`
	ResetAt    time.Time `json:"reset_at"    example:"2026-10-15T14:30:00Z" doc:"When the current 24-hour window expires"`
}

// VendorStatus describes one configured vendor.
type VendorStatus struct {
	ID                domain.VendorID `json:"id"                            example:"kroger"`
	DisplayName       string          `json:"display_name"                  example:"Kroger"`
	Capabilities      []string        `json:"capabilities"                  doc:"Supported operations"`
	FailurePolicy     string          `json:"failure_policy"                example:"propagate"`
	DefaultLocationID string          `json:"default_location_id,omitempty" example:"01400943"`
	ResultLimit       int             `json:"result_limit"                  example:"10"`
	Quota             *QuotaStatus    `json:"quota,omitempty"`
}

// VendorsOutput is the response body for the vendors endpoint.
type VendorsOutput struct {
	Body struct {
		Vendors []VendorStatus `json:"vendors" doc:"Vendors in fan-out order"`
	}
}

// ListVendors returns the configured vendors and their quota usage.
func (h *VendorHandler) ListVendors(_ context.Context, _ *struct{}) (*VendorsOutput, error) {
	infos := h.agg.Vendors()

	out := &VendorsOutput{}
	out.Body.Vendors = make([]VendorStatus, 0, len(infos))
	for _, info := range infos {
		d := info.Descriptor
		vs := VendorStatus{
			ID:                d.ID,
			DisplayName:       d.DisplayName,
			Capabilities:      d.Capabilities.Strings(),
			FailurePolicy:     string(d.FailurePolicy),
			DefaultLocationID: d.DefaultLocationID,
			ResultLimit:       d.ResultLimit,
		}
		if q := info.Quota; q != nil {
			vs.Quota = &QuotaStatus{
				DailyLimit: q.Limit,
				DailyUsed:  q.Used,
				Remaining:  q.Remaining,
				ResetAt:    q.ResetAt,
			}
		}
		out.Body.Vendors = append(out.Body.Vendors, vs)
	}
	return out, nil
}

// RegisterVendorRoutes registers the vendors endpoint with the Huma API.
func RegisterVendorRoutes(api huma.API, h *VendorHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-vendors",
		Method:      http.MethodGet,
		Path:        "/api/v1/vendors",
		Summary:     "List configured vendors",
		Description: "Returns each vendor's capabilities, failure policy, and daily API quota usage.",
		Tags:        []string{"vendors"},
	}, h.ListVendors)
}
