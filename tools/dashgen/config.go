package main

import "errors"

// KnownMetrics is the set of metric names exported by grocery-prices plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"grocer_http_request_duration_seconds": true,
	"grocer_http_requests_total":           true,

	// Health metrics.
	"grocer_healthz_up": true,
	"grocer_readyz_up":  true,

	// Vendor metrics.
	"grocer_vendor_request_duration_seconds": true,
	"grocer_vendor_failures_total":           true,
	"grocer_vendor_daily_usage":              true,
	"grocer_vendor_daily_limit_hits_total":   true,

	// Token metrics.
	"grocer_token_fetches_total": true,

	// Offer mapping metrics.
	"grocer_offer_mapping_items":           true,
	"grocer_offer_mapping_refreshes_total": true,

	// Aggregation metrics.
	"grocer_aggregate_queries_total":  true,
	"grocer_aggregate_result_records": true,

	// Recording rules.
	"grocer:http_requests:rate5m":      true,
	"grocer:http_errors:rate5m":        true,
	"grocer:vendor_requests:rate5m":    true,
	"grocer:vendor_failures:rate5m":    true,
	"grocer:aggregate_queries:rate5m":  true,
	"grocer:token_fetch_errors:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
