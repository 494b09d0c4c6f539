package offers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/grocery-prices/internal/metrics"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

const refreshTimeout = 30 * time.Second

// Loader reads a vendor's persisted offer mappings. store.Store satisfies it.
type Loader interface {
	ListOfferMappings(ctx context.Context, vendor domain.VendorID) (map[string][]string, error)
}

// Refresher periodically reloads a Holder from a Loader.
type Refresher struct {
	cron   *cron.Cron
	loader Loader
	holder *Holder
	log    *slog.Logger
}

// NewRefresher creates a Refresher that reloads holder every interval.
func NewRefresher(
	loader Loader,
	holder *Holder,
	interval time.Duration,
	log *slog.Logger,
) (*Refresher, error) {
	c := cron.New()

	r := &Refresher{
		cron:   c,
		loader: loader,
		holder: holder,
		log:    log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), r.runRefresh); err != nil {
		return nil, fmt.Errorf("scheduling offer mapping refresh: %w", err)
	}

	return r, nil
}

// Refresh loads the mapping once and swaps it in. On failure the previous
// snapshot stays active.
func (r *Refresher) Refresh(ctx context.Context) error {
	raw, err := r.loader.ListOfferMappings(ctx, r.holder.vendor)
	if err != nil {
		metrics.OfferMappingRefreshesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("loading %s offer mappings: %w", r.holder.vendor, err)
	}

	m := FromMap(raw)
	r.holder.Swap(m)
	metrics.OfferMappingRefreshesTotal.WithLabelValues("success").Inc()

	r.log.Debug("offer mapping refreshed",
		"vendor", r.holder.vendor,
		"items", m.Len(),
	)
	return nil
}

// Start begins running scheduled refreshes.
func (r *Refresher) Start() {
	r.log.Info("offer mapping refresher started", "vendor", r.holder.vendor)
	r.cron.Start()
}

// Stop stops the scheduler, returning a context done when running jobs finish.
func (r *Refresher) Stop() context.Context {
	r.log.Info("offer mapping refresher stopping")
	return r.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (r *Refresher) Entries() []cron.Entry {
	return r.cron.Entries()
}

func (r *Refresher) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := r.Refresh(ctx); err != nil {
		r.log.Error("scheduled offer mapping refresh failed, keeping previous mapping", "error", err)
	}
}
