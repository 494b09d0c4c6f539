package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// VendorLatency returns a timeseries panel showing p95 vendor call latency
// per vendor and operation.
func VendorLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Vendor Latency p95").
		Description("95th percentile duration of vendor adapter calls").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(grocer_vendor_request_duration_seconds_bucket[5m])) by (le, vendor, operation))`,
			"{{vendor}} {{operation}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// VendorFailures returns a timeseries panel showing degraded vendor calls
// per second.
func VendorFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Vendor Failures").
		Description("Vendor calls that failed and were left out of the response").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`grocer:vendor_failures:rate5m`, "{{vendor}} {{operation}}", "A")).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DailyUsage returns a timeseries panel showing each vendor's calls in the
// rolling 24-hour window.
func DailyUsage() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Daily Usage").
		Description("Vendor API calls in the rolling 24-hour window").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`grocer_vendor_daily_usage`, "{{vendor}}", "A")).
		WithTarget(PromQuery(`grocer:vendor_requests:rate5m`, "{{vendor}} req/s", "B")).
		Unit("short").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("last", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LimitHits returns a stat panel counting daily limit hits over the last day.
func LimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Limit Hits (24h)").
		Description("Times a vendor daily call limit was reached").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(grocer_vendor_daily_limit_hits_total[24h])) by (vendor)`,
			"{{vendor}}", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
