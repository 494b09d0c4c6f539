// Package aggregate fans one logical price or location query out to every
// configured vendor adapter and merges the answers. A failing vendor never
// fails the whole query; it contributes zero records and an error status.
package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/grocery-prices/internal/adapter"
	"github.com/donaldgifford/grocery-prices/internal/metrics"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

const defaultVendorTimeout = 10 * time.Second

// Status is the outcome of one vendor's part of a query.
type Status string

// Source statuses.
const (
	StatusOK      Status = "ok"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

// SourceStatus reports how one vendor fared.
type SourceStatus struct {
	Vendor     domain.VendorID `json:"vendor"`
	Status     Status          `json:"status"`
	Count      int             `json:"count"`
	Error      string          `json:"error,omitempty"`
	DurationMs int64           `json:"duration_ms"`
}

// Result is a merged price query answer. Prices are grouped by vendor in
// configured order.
type Result struct {
	Prices  []domain.PriceRecord
	Sources []SourceStatus
}

// LocationsResult is a merged locations query answer.
type LocationsResult struct {
	Locations []domain.LocationRecord
	Sources   []SourceStatus
}

// VendorInfo describes a configured vendor and its current call budget.
type VendorInfo struct {
	Descriptor adapter.Descriptor
	Quota      *adapter.Quota
}

// Aggregator queries vendor adapters concurrently.
type Aggregator struct {
	adapters    []adapter.Searcher
	descriptors []adapter.Descriptor
	timeout     time.Duration
	log         *slog.Logger
}

// Option configures the Aggregator.
type Option func(*Aggregator)

// WithVendorTimeout bounds each vendor call. Non-positive values keep the
// default.
func WithVendorTimeout(d time.Duration) Option {
	return func(a *Aggregator) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Aggregator) {
		a.log = l
	}
}

// New creates an Aggregator over adapters. Their order is the merge order.
func New(adapters []adapter.Searcher, opts ...Option) *Aggregator {
	a := &Aggregator{
		adapters:    adapters,
		descriptors: make([]adapter.Descriptor, len(adapters)),
		timeout:     defaultVendorTimeout,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	for i, ad := range adapters {
		a.descriptors[i] = ad.Descriptor()
	}
	return a
}

// Query asks every searchable vendor for item near zip. It fails only when
// item is blank.
func (a *Aggregator) Query(ctx context.Context, item, zip string) (*Result, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, fmt.Errorf("%w: item is required", domain.ErrValidation)
	}
	zip = strings.TrimSpace(zip)

	metrics.AggregateQueriesTotal.WithLabelValues("prices").Inc()

	parts := make([][]domain.PriceRecord, len(a.adapters))
	sources := make([]SourceStatus, len(a.adapters))

	var g errgroup.Group
	for i, ad := range a.adapters {
		d := a.descriptors[i]
		if !d.CanSearch() {
			sources[i] = SourceStatus{Vendor: d.ID, Status: StatusSkipped}
			continue
		}

		q := adapter.Query{
			Term:       item,
			ZIP:        zip,
			LocationID: d.DefaultLocationID,
			Limit:      d.ResultLimit,
		}
		g.Go(func() error {
			records, status := isolate(ctx, a, d, "search", func(ctx context.Context) ([]domain.PriceRecord, error) {
				return ad.Search(ctx, q)
			})
			parts[i], sources[i] = records, status
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // goroutines never return errors

	res := &Result{Prices: concat(parts), Sources: sources}
	metrics.AggregateResultRecords.Observe(float64(len(res.Prices)))
	return res, nil
}

// Locations asks every vendor with the locations capability for stores
// near zip. It fails only when zip is blank.
func (a *Aggregator) Locations(ctx context.Context, zip string) (*LocationsResult, error) {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return nil, fmt.Errorf("%w: zip is required", domain.ErrValidation)
	}

	metrics.AggregateQueriesTotal.WithLabelValues("locations").Inc()

	parts := make([][]domain.LocationRecord, len(a.adapters))
	sources := make([]SourceStatus, len(a.adapters))

	var g errgroup.Group
	for i, ad := range a.adapters {
		d := a.descriptors[i]
		loc, ok := ad.(adapter.Locator)
		if !ok || !d.Capabilities.Has(adapter.Locations) {
			sources[i] = SourceStatus{Vendor: d.ID, Status: StatusSkipped}
			continue
		}

		g.Go(func() error {
			records, status := isolate(ctx, a, d, "locations", func(ctx context.Context) ([]domain.LocationRecord, error) {
				return loc.Locations(ctx, zip)
			})
			parts[i], sources[i] = records, status
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // goroutines never return errors

	return &LocationsResult{Locations: concat(parts), Sources: sources}, nil
}

// Vendors lists the configured vendors in merge order.
func (a *Aggregator) Vendors() []VendorInfo {
	out := make([]VendorInfo, 0, len(a.adapters))
	for i, ad := range a.adapters {
		info := VendorInfo{Descriptor: a.descriptors[i]}
		if qr, ok := ad.(adapter.QuotaReporter); ok {
			if q, ok := qr.Quota(); ok {
				info.Quota = &q
			}
		}
		out = append(out, info)
	}
	return out
}

// isolate runs one vendor call under its own deadline. The deadline is
// detached from parent cancellation so an abandoned request does not abort
// in-flight vendor calls. Errors and panics become an error status.
func isolate[T any](
	parent context.Context,
	a *Aggregator,
	d adapter.Descriptor,
	operation string,
	fn func(ctx context.Context) ([]T, error),
) (out []T, status SourceStatus) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), a.timeout)
	defer cancel()

	start := time.Now()
	status = SourceStatus{Vendor: d.ID}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			status = a.fail(d, operation, start, fmt.Errorf("%w: adapter panic: %v", domain.ErrVendorRequest, r))
		}
	}()

	records, err := fn(ctx)
	if err != nil {
		return nil, a.fail(d, operation, start, err)
	}

	if d.ResultLimit > 0 && len(records) > d.ResultLimit {
		records = records[:d.ResultLimit]
	}

	elapsed := time.Since(start)
	metrics.VendorRequestDuration.WithLabelValues(string(d.ID), operation, "ok").Observe(elapsed.Seconds())

	status.Status = StatusOK
	status.Count = len(records)
	status.DurationMs = elapsed.Milliseconds()
	return records, status
}

func (a *Aggregator) fail(d adapter.Descriptor, operation string, start time.Time, err error) SourceStatus {
	elapsed := time.Since(start)

	metrics.VendorRequestDuration.WithLabelValues(string(d.ID), operation, "error").Observe(elapsed.Seconds())
	metrics.VendorFailuresTotal.WithLabelValues(string(d.ID), operation).Inc()

	a.log.Warn("vendor call failed, continuing without it",
		"vendor", d.ID,
		"operation", operation,
		"duration_ms", elapsed.Milliseconds(),
		"error", err,
	)

	return SourceStatus{
		Vendor:     d.ID,
		Status:     StatusError,
		Error:      err.Error(),
		DurationMs: elapsed.Milliseconds(),
	}
}

func concat[T any](parts [][]T) []T {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]T, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
