// Package store defines the datastore abstraction for grocery-prices. The
// only persisted data is the item name to offer ID mapping used by
// mapping-only vendors; prices are never stored.
package store

import (
	"context"

	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// Store defines all data access operations for grocery-prices.
type Store interface {
	// Offer mappings. Item names are stored normalized.
	ListOfferMappings(ctx context.Context, vendor domain.VendorID) (map[string][]string, error)
	UpsertOfferMappings(ctx context.Context, vendor domain.VendorID, mappings map[string][]string) (int, error)
	DeleteOfferMappings(ctx context.Context, vendor domain.VendorID, itemName string) (int64, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close()
}
