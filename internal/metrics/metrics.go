// Package metrics defines Prometheus metrics for grocery-prices.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "grocer"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the liveness check last succeeded (1) or not (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the readiness check last succeeded (1) or not (0).",
	})
)

// Vendor metrics.
var (
	VendorRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "vendor_request_duration_seconds",
		Help:      "Duration of vendor adapter calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"vendor", "operation", "outcome"})

	VendorFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vendor_failures_total",
		Help:      "Total number of vendor calls that failed or were degraded.",
	}, []string{"vendor", "operation"})

	VendorDailyUsage = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "vendor_daily_usage",
		Help:      "Vendor API calls made within the rolling 24-hour window.",
	}, []string{"vendor"})

	VendorDailyLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vendor_daily_limit_hits_total",
		Help:      "Total number of times a vendor's daily call limit was reached.",
	}, []string{"vendor"})
)

// Token metrics.
var (
	TokenFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_fetches_total",
		Help:      "Total number of vendor token exchanges by result.",
	}, []string{"vendor", "result"})
)

// Offer mapping metrics.
var (
	OfferMappingItems = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "offer_mapping_items",
		Help:      "Number of item names with a configured offer mapping.",
	}, []string{"vendor"})

	OfferMappingRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offer_mapping_refreshes_total",
		Help:      "Total number of offer mapping reloads by result.",
	}, []string{"result"})
)

// Aggregation metrics.
var (
	AggregateQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "aggregate_queries_total",
		Help:      "Total number of aggregate queries by kind.",
	}, []string{"kind"})

	AggregateResultRecords = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "aggregate_result_records",
		Help:      "Number of records returned per aggregate price query.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11),
	})
)
