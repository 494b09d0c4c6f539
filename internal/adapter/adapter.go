// Package adapter defines the capability-based contract every grocery vendor
// adapter implements, plus the pieces the adapters share: the bearer
// transport, the failure policy helper and the per-vendor call budget.
package adapter

import (
	"context"
	"errors"
	"log/slog"

	"github.com/donaldgifford/grocery-prices/internal/metrics"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// Capability is a bit set of what a vendor adapter can do.
type Capability uint8

// Capability flags.
const (
	SearchByTerm Capability = 1 << iota
	SearchByMapping
	Locations
)

// Has reports whether all bits of o are set.
func (c Capability) Has(o Capability) bool {
	return c&o == o
}

// Strings lists the set capabilities by name, in declaration order.
func (c Capability) Strings() []string {
	names := make([]string, 0, 3)
	if c.Has(SearchByTerm) {
		names = append(names, "search_by_term")
	}
	if c.Has(SearchByMapping) {
		names = append(names, "search_by_mapping")
	}
	if c.Has(Locations) {
		names = append(names, "locations")
	}
	return names
}

// FailurePolicy decides what happens to a vendor failure.
type FailurePolicy string

// Failure policies.
const (
	// Propagate returns the error to the caller, which isolates it.
	Propagate FailurePolicy = "propagate"
	// Degrade logs the error and turns it into an empty result.
	Degrade FailurePolicy = "degrade"
)

// Descriptor is a vendor's static capability description.
type Descriptor struct {
	ID                domain.VendorID
	DisplayName       string
	Capabilities      Capability
	FailurePolicy     FailurePolicy
	DefaultLocationID string
	ResultLimit       int
}

// CanSearch reports whether the vendor answers price searches at all.
func (d Descriptor) CanSearch() bool {
	return d.Capabilities&(SearchByTerm|SearchByMapping) != 0
}

// Query is a vendor-neutral price search.
type Query struct {
	Term       string
	ZIP        string
	LocationID string
	Limit      int
}

// Searcher is the capability every vendor adapter has.
type Searcher interface {
	Descriptor() Descriptor
	Search(ctx context.Context, q Query) ([]domain.PriceRecord, error)
}

// Locator is implemented by adapters with the Locations capability.
type Locator interface {
	Locations(ctx context.Context, zip string) ([]domain.LocationRecord, error)
}

// SearchLocator is an adapter with both search and locations support.
type SearchLocator interface {
	Searcher
	Locator
}

// QuotaReporter is implemented by adapters running under a RateLimiter.
type QuotaReporter interface {
	Quota() (Quota, bool)
}

// TokenProvider supplies bearer tokens for one vendor.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
	Invalidate(ctx context.Context) error
}

// ApplyPolicy resolves a vendor call outcome under d's failure policy.
// Validation errors always surface. Under Degrade any other error is logged
// at WARN, counted, and replaced by an empty result.
func ApplyPolicy[T any](log *slog.Logger, d Descriptor, operation string, out []T, err error) ([]T, error) {
	if err == nil {
		if out == nil {
			out = []T{}
		}
		return out, nil
	}
	if errors.Is(err, domain.ErrValidation) || d.FailurePolicy != Degrade {
		return nil, err
	}

	metrics.VendorFailuresTotal.WithLabelValues(string(d.ID), operation).Inc()
	log.Warn("vendor call degraded to empty result",
		"vendor", d.ID,
		"operation", operation,
		"error", err,
	)
	return []T{}, nil
}
