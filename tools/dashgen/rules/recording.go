package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "grocer-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "grocer-recording",
					Rules: []Rule{
						{
							Record: "grocer:http_requests:rate5m",
							Expr:   `sum(rate(grocer_http_requests_total[5m]))`,
						},
						{
							Record: "grocer:http_errors:rate5m",
							Expr:   `sum(rate(grocer_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "grocer:vendor_requests:rate5m",
							Expr:   `sum(rate(grocer_vendor_request_duration_seconds_count[5m])) by (vendor)`,
						},
						{
							Record: "grocer:vendor_failures:rate5m",
							Expr:   `sum(rate(grocer_vendor_failures_total[5m])) by (vendor, operation)`,
						},
						{
							Record: "grocer:aggregate_queries:rate5m",
							Expr:   `sum(rate(grocer_aggregate_queries_total[5m])) by (kind)`,
						},
						{
							Record: "grocer:token_fetch_errors:rate5m",
							Expr:   `sum(rate(grocer_token_fetches_total{result!="success"}[5m])) by (vendor)`,
						},
					},
				},
			},
		},
	}
}
