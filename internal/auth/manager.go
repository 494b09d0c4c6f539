// Package auth implements the per-vendor OAuth2 client-credentials token
// lifecycle: acquisition through a vendor Grant, caching in a TokenStore,
// and renewal shortly before expiry.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/grocery-prices/internal/credentials"
	"github.com/donaldgifford/grocery-prices/internal/metrics"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

const defaultRefreshMargin = 60 * time.Second

// Manager hands out vendor access tokens. Cached tokens are reused until
// refreshMargin before their expiry; concurrent misses for the same vendor
// share a single exchange.
type Manager struct {
	creds   credentials.Source
	grants  map[domain.VendorID]Grant
	store   TokenStore
	margin  time.Duration
	nowFunc func() time.Time // for testing
	log     *slog.Logger

	flight singleflight.Group
}

// Option configures the Manager.
type Option func(*Manager)

// WithGrant registers the token exchange for a vendor.
func WithGrant(vendor domain.VendorID, g Grant) Option {
	return func(m *Manager) {
		m.grants[vendor] = g
	}
}

// WithStore overrides the default in-memory token store.
func WithStore(s TokenStore) Option {
	return func(m *Manager) {
		m.store = s
	}
}

// WithRefreshMargin sets how long before expiry a token is renewed.
func WithRefreshMargin(d time.Duration) Option {
	return func(m *Manager) {
		m.margin = max(d, 0)
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(m *Manager) {
		m.nowFunc = f
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		m.log = l
	}
}

// NewManager creates a Manager reading secrets from creds.
func NewManager(creds credentials.Source, opts ...Option) *Manager {
	m := &Manager{
		creds:   creds,
		grants:  make(map[domain.VendorID]Grant),
		store:   NewMemoryStore(),
		margin:  defaultRefreshMargin,
		nowFunc: time.Now,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Token returns a valid access token for vendor, exchanging credentials
// only when the cached token is missing or about to expire.
func (m *Manager) Token(ctx context.Context, vendor domain.VendorID) (string, error) {
	if tok, ok := m.cached(ctx, vendor); ok {
		return tok, nil
	}

	v, err, _ := m.flight.Do(string(vendor), func() (any, error) {
		// A flight that finished just before this one may have filled the cache.
		if tok, ok := m.cached(ctx, vendor); ok {
			return tok, nil
		}
		return m.refresh(ctx, vendor)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil //nolint:forcetypeassert // flight only returns strings
}

// Invalidate drops the cached token so the next Token call re-authenticates.
func (m *Manager) Invalidate(ctx context.Context, vendor domain.VendorID) error {
	if err := m.store.Delete(ctx, vendor); err != nil {
		return fmt.Errorf("invalidating %s token: %w", vendor, err)
	}
	return nil
}

// For binds the Manager to one vendor.
func (m *Manager) For(vendor domain.VendorID) *VendorTokens {
	return &VendorTokens{m: m, vendor: vendor}
}

func (m *Manager) cached(ctx context.Context, vendor domain.VendorID) (string, bool) {
	tok, ok, err := m.store.Get(ctx, vendor)
	if err != nil {
		m.log.Warn("token store read failed, fetching new token",
			"vendor", vendor,
			"error", err,
		)
		return "", false
	}
	if !ok || tok.AccessToken == "" {
		return "", false
	}
	if !m.nowFunc().Before(tok.ExpiresAt.Add(-m.margin)) {
		return "", false
	}
	return tok.AccessToken, true
}

func (m *Manager) refresh(ctx context.Context, vendor domain.VendorID) (string, error) {
	creds, err := m.creds.Lookup(vendor)
	if err != nil {
		metrics.TokenFetchesTotal.WithLabelValues(string(vendor), "config_error").Inc()
		return "", err
	}

	grant, ok := m.grants[vendor]
	if !ok {
		metrics.TokenFetchesTotal.WithLabelValues(string(vendor), "config_error").Inc()
		return "", fmt.Errorf("%w: no token grant registered for vendor %q", domain.ErrAuthConfig, vendor)
	}

	issued, err := grant.Exchange(ctx, creds)
	if err != nil {
		metrics.TokenFetchesTotal.WithLabelValues(string(vendor), "error").Inc()
		if !errors.Is(err, domain.ErrAuthRequest) && !errors.Is(err, domain.ErrAuthConfig) {
			err = fmt.Errorf("%w: %v", domain.ErrAuthRequest, err)
		}
		return "", fmt.Errorf("fetching %s token: %w", vendor, err)
	}

	if issued.AccessToken == "" {
		metrics.TokenFetchesTotal.WithLabelValues(string(vendor), "error").Inc()
		return "", fmt.Errorf("fetching %s token: %w: response has no access token", vendor, domain.ErrAuthRequest)
	}
	if issued.ExpiresIn <= 0 {
		metrics.TokenFetchesTotal.WithLabelValues(string(vendor), "error").Inc()
		return "", fmt.Errorf("fetching %s token: %w: token has no lifetime", vendor, domain.ErrAuthRequest)
	}

	tok := Token{
		AccessToken: issued.AccessToken,
		ExpiresAt:   m.nowFunc().Add(issued.ExpiresIn),
	}
	if err := m.store.Put(ctx, vendor, tok); err != nil {
		// The token is still good for this caller; the next one refetches.
		m.log.Warn("token store write failed", "vendor", vendor, "error", err)
	}

	metrics.TokenFetchesTotal.WithLabelValues(string(vendor), "success").Inc()
	m.log.Debug("vendor token refreshed",
		"vendor", vendor,
		"expires_at", tok.ExpiresAt,
	)

	return tok.AccessToken, nil
}

// VendorTokens is a Manager bound to a single vendor. Vendor clients depend
// on it through their own TokenProvider interface.
type VendorTokens struct {
	m      *Manager
	vendor domain.VendorID
}

// Token returns a valid token for the bound vendor.
func (v *VendorTokens) Token(ctx context.Context) (string, error) {
	return v.m.Token(ctx, v.vendor)
}

// Invalidate drops the bound vendor's cached token.
func (v *VendorTokens) Invalidate(ctx context.Context) error {
	return v.m.Invalidate(ctx, v.vendor)
}
