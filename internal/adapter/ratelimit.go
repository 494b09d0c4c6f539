package adapter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/donaldgifford/grocery-prices/internal/metrics"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// ErrDailyLimitReached is returned when a vendor's daily call budget is spent.
var ErrDailyLimitReached = errors.New("daily vendor API limit reached")

// Quota is a snapshot of a vendor's daily call budget.
type Quota struct {
	Used      int64
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

// RateLimiter combines a per-second token bucket with a rolling 24-hour call
// quota for one vendor.
type RateLimiter struct {
	vendor   domain.VendorID
	limiter  *rate.Limiter
	daily    atomic.Int64
	maxDaily int64
	resetAt  time.Time
	mu       sync.Mutex
	nowFunc  func() time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a limiter for vendor. A maxDaily of zero or less
// disables the daily quota.
func NewRateLimiter(
	vendor domain.VendorID,
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		vendor:   vendor,
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(24 * time.Hour)
	return r
}

// Wait blocks until a call is allowed or ctx is done. It returns
// ErrDailyLimitReached once the daily quota is exhausted.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.checkDailyReset()

	if r.maxDaily > 0 && r.daily.Load() >= r.maxDaily {
		metrics.VendorDailyLimitHits.WithLabelValues(string(r.vendor)).Inc()
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.daily.Load(), r.maxDaily)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	n := r.daily.Add(1)
	metrics.VendorDailyUsage.WithLabelValues(string(r.vendor)).Set(float64(n))
	return nil
}

// Quota returns the current usage of the daily budget.
func (r *RateLimiter) Quota() Quota {
	r.checkDailyReset()

	used := r.daily.Load()
	remaining := max(r.maxDaily-used, 0)

	r.mu.Lock()
	defer r.mu.Unlock()
	return Quota{
		Used:      used,
		Limit:     r.maxDaily,
		Remaining: remaining,
		ResetAt:   r.resetAt,
	}
}

func (r *RateLimiter) checkDailyReset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.daily.Store(0)
		r.resetAt = now.Add(24 * time.Hour)
		metrics.VendorDailyUsage.WithLabelValues(string(r.vendor)).Set(0)
	}
}
