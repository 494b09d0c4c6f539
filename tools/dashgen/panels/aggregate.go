package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// QueryRate returns a timeseries panel showing aggregate queries per second
// by kind.
func QueryRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Aggregate Queries").
		Description("Price and location fan-out queries per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`grocer:aggregate_queries:rate5m`, "{{kind}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ResultRecords returns a bar gauge showing how many records price queries
// return.
func ResultRecords() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Records per Query").
		Description("Distribution of records returned per price query").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(grocer_aggregate_result_records_bucket[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// OfferMappingItems returns a stat panel showing the mapped item count per
// vendor.
func OfferMappingItems() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Mapped Items").
		Description("Item names with a configured offer mapping").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`grocer_offer_mapping_items`, "{{vendor}}", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// TokenFetchErrors returns a timeseries panel showing failed token exchanges
// and offer mapping reloads.
func TokenFetchErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Token and Refresh Errors").
		Description("Failed vendor token exchanges and offer mapping reloads").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`grocer:token_fetch_errors:rate5m`, "{{vendor}} token", "A")).
		WithTarget(PromQuery(
			`sum(rate(grocer_offer_mapping_refreshes_total{result="error"}[5m]))`,
			"offer refresh", "B",
		)).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
