// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/grocery-prices/tools/dashgen/panels"
)

// BuildOverview constructs the Grocer Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Grocer Overview").
		Uid("grocer-overview").
		Tags([]string{"grocer", "grocery-prices"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Vendors.
	b.WithRow(dashboard.NewRowBuilder("Vendors").
		WithPanel(panels.VendorLatency()).
		WithPanel(panels.VendorFailures()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	// Row 4: Aggregation.
	b.WithRow(dashboard.NewRowBuilder("Aggregation").
		WithPanel(panels.QueryRate()).
		WithPanel(panels.ResultRecords()).
		WithPanel(panels.OfferMappingItems()).
		WithPanel(panels.TokenFetchErrors()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
