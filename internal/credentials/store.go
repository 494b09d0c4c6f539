// Package credentials holds per-vendor client-credentials secrets behind a
// read-only lookup. The store is built once at startup and never mutated.
package credentials

import (
	"fmt"
	"maps"

	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// Credentials is a client-credentials pair plus an optional OAuth2 scope.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Scope        string
}

// Complete reports whether both halves of the pair are present.
func (c Credentials) Complete() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Source looks up credentials for a vendor.
type Source interface {
	Lookup(vendor domain.VendorID) (Credentials, error)
}

// Store is an immutable Source backed by a map.
type Store struct {
	creds map[domain.VendorID]Credentials
}

// New copies creds into a new Store.
func New(creds map[domain.VendorID]Credentials) *Store {
	return &Store{creds: maps.Clone(creds)}
}

// Lookup returns the vendor's credentials. It fails with ErrAuthConfig when
// the vendor is unknown or either half of the pair is empty.
func (s *Store) Lookup(vendor domain.VendorID) (Credentials, error) {
	c, ok := s.creds[vendor]
	if !ok {
		return Credentials{}, fmt.Errorf("%w: no credentials for vendor %q", domain.ErrAuthConfig, vendor)
	}
	if !c.Complete() {
		return Credentials{}, fmt.Errorf(
			"%w: client id and client secret must be set for vendor %q",
			domain.ErrAuthConfig, vendor,
		)
	}
	return c, nil
}

// Configured reports whether vendor has a complete credential pair.
func (s *Store) Configured(vendor domain.VendorID) bool {
	c, ok := s.creds[vendor]
	return ok && c.Complete()
}
