package offers

import (
	"sync/atomic"

	"github.com/donaldgifford/grocery-prices/internal/metrics"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// Holder publishes the current Mapping for one vendor. Readers always see a
// complete snapshot.
type Holder struct {
	vendor  domain.VendorID
	current atomic.Pointer[Mapping]
}

// NewHolder creates a Holder serving m.
func NewHolder(vendor domain.VendorID, m Mapping) *Holder {
	h := &Holder{vendor: vendor}
	h.Swap(m)
	return h
}

// Current returns the active snapshot.
func (h *Holder) Current() Mapping {
	return *h.current.Load()
}

// Swap replaces the active snapshot.
func (h *Holder) Swap(m Mapping) {
	h.current.Store(&m)
	metrics.OfferMappingItems.WithLabelValues(string(h.vendor)).Set(float64(m.Len()))
}

// Lookup resolves item against the active snapshot.
func (h *Holder) Lookup(item string) []string {
	return h.Current().Lookup(item)
}
