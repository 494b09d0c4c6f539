package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// grocery-prices operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "grocer-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "grocer-alerts",
					Rules: []Rule{
						{
							Alert: "GrocerDown",
							Expr:  `absent(up{job="grocery-prices"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Grocery Prices is down",
								"description": "The grocery-prices job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "GrocerReadinessDown",
							Expr:  `grocer_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Grocery Prices readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes. Check the token and offer stores.",
							},
						},
						{
							Alert: "GrocerHighErrorRate",
							Expr:  `grocer:http_errors:rate5m / grocer:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Grocery Prices",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "GrocerVendorFailing",
							Expr:  `grocer:vendor_failures:rate5m / on (vendor) group_left grocer:vendor_requests:rate5m > 0.5`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Vendor {{ $labels.vendor }} is failing",
								"description": "More than half of {{ $labels.vendor }} {{ $labels.operation }} calls have failed for 10 minutes. Its results are missing from responses.",
							},
						},
						{
							Alert: "GrocerKrogerQuotaHigh",
							Expr:  `grocer_vendor_daily_usage{vendor="kroger"} > 8000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Kroger API daily usage is above 80% of the quota",
								"description": "Daily Kroger API usage has exceeded 8000 calls (limit is 10000).",
							},
						},
						{
							Alert: "GrocerVendorLimitReached",
							Expr:  `increase(grocer_vendor_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Vendor {{ $labels.vendor }} daily limit has been reached",
								"description": "The daily call budget is exhausted. The vendor is skipped until the window resets.",
							},
						},
						{
							Alert: "GrocerTokenFetchFailing",
							Expr:  `grocer:token_fetch_errors:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Token exchange failing for {{ $labels.vendor }}",
								"description": "Vendor OAuth token requests have been failing for more than 5 minutes. Check the configured credentials.",
							},
						},
						{
							Alert: "GrocerOfferMappingEmpty",
							Expr:  `grocer_offer_mapping_items{vendor="walmart"} == 0`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "No Walmart offer mappings loaded",
								"description": "Walmart queries return no results without offer mappings.",
							},
						},
						{
							Alert: "GrocerOfferRefreshFailing",
							Expr:  `increase(grocer_offer_mapping_refreshes_total{result="error"}[15m]) > 0`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Offer mapping refresh is failing",
								"description": "Reloading offer mappings from Postgres has failed for 15 minutes. The last loaded mappings are still served.",
							},
						},
					},
				},
			},
		},
	}
}
