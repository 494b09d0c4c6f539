package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/donaldgifford/grocery-prices/internal/adapter"
	"github.com/donaldgifford/grocery-prices/internal/adapter/kroger"
	"github.com/donaldgifford/grocery-prices/internal/adapter/walmart"
	"github.com/donaldgifford/grocery-prices/internal/aggregate"
	"github.com/donaldgifford/grocery-prices/internal/api/handlers"
	"github.com/donaldgifford/grocery-prices/internal/auth"
	"github.com/donaldgifford/grocery-prices/internal/config"
	"github.com/donaldgifford/grocery-prices/internal/credentials"
	"github.com/donaldgifford/grocery-prices/internal/offers"
	"github.com/donaldgifford/grocery-prices/internal/store"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// app holds the wired core and everything that needs closing on shutdown.
type app struct {
	aggregator *aggregate.Aggregator
	checks     map[string]handlers.Pinger
	closers    []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func buildApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	a := &app{checks: make(map[string]handlers.Pinger)}

	manager, err := a.tokenManager(ctx, cfg, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	holder, err := a.offerHolder(ctx, cfg, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	adapters := make([]adapter.Searcher, 0, len(cfg.Aggregator.Vendors))
	for _, name := range cfg.Aggregator.Vendors {
		switch name {
		case config.VendorKroger:
			adapters = append(adapters, newKrogerClient(cfg, manager, log))
		case config.VendorWalmart:
			adapters = append(adapters, newWalmartClient(cfg, manager, holder, log))
		}
	}

	a.aggregator = aggregate.New(adapters,
		aggregate.WithVendorTimeout(cfg.Aggregator.VendorTimeout),
		aggregate.WithLogger(log),
	)
	return a, nil
}

func (a *app) tokenManager(ctx context.Context, cfg *config.Config, log *slog.Logger) (*auth.Manager, error) {
	creds := credentials.New(map[domain.VendorID]credentials.Credentials{
		domain.VendorKroger: {
			ClientID:     cfg.Kroger.ClientID,
			ClientSecret: cfg.Kroger.ClientSecret,
			Scope:        cfg.Kroger.Scope,
		},
		domain.VendorWalmart: {
			ClientID:     cfg.Walmart.ConsumerID,
			ClientSecret: cfg.Walmart.ClientSecret,
		},
	})
	for _, v := range []domain.VendorID{domain.VendorKroger, domain.VendorWalmart} {
		if !creds.Configured(v) {
			log.Warn("vendor credentials missing, its lookups will return no data", "vendor", v)
		}
	}

	var tokenStore auth.TokenStore = auth.NewMemoryStore()
	if cfg.TokenCache.Backend == "redis" {
		rs, err := auth.NewRedisStore(ctx, auth.RedisOptions{
			Addr:      cfg.TokenCache.Redis.Addr,
			Password:  cfg.TokenCache.Redis.Password,
			DB:        cfg.TokenCache.Redis.DB,
			KeyPrefix: cfg.TokenCache.Redis.KeyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("creating token store: %w", err)
		}
		a.closers = append(a.closers, func() { _ = rs.Close() })
		a.checks["token_store"] = rs
		tokenStore = rs
		log.Info("using redis token store", "addr", cfg.TokenCache.Redis.Addr)
	}

	krogerGrant := kroger.NewGrant(
		kroger.WithTokenURL(cfg.Kroger.TokenURL),
		kroger.WithAuthStyle(kroger.AuthStyle(cfg.Kroger.AuthStyle)),
		kroger.WithGrantHTTPClient(&http.Client{Timeout: cfg.Kroger.Timeout}),
	)
	walmartGrant := walmart.NewGrant(
		walmart.WithTokenURL(cfg.Walmart.TokenURL),
		walmart.WithGrantHTTPClient(&http.Client{Timeout: cfg.Walmart.Timeout}),
	)

	return auth.NewManager(creds,
		auth.WithGrant(domain.VendorKroger, krogerGrant),
		auth.WithGrant(domain.VendorWalmart, walmartGrant),
		auth.WithStore(tokenStore),
		auth.WithRefreshMargin(cfg.TokenCache.RefreshMargin),
		auth.WithLogger(log),
	), nil
}

func (a *app) offerHolder(ctx context.Context, cfg *config.Config, log *slog.Logger) (*offers.Holder, error) {
	if cfg.Offers.Source != "postgres" {
		m := offers.ParseLenient(cfg.Walmart.OfferIDMap, log)
		log.Info("loaded static offer mapping", "items", m.Len())
		return offers.NewHolder(domain.VendorWalmart, m), nil
	}

	s, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	a.closers = append(a.closers, s.Close)
	a.checks["offer_store"] = s

	holder := offers.NewHolder(domain.VendorWalmart, offers.Mapping{})

	refresher, err := offers.NewRefresher(s, holder, cfg.Offers.RefreshInterval, log)
	if err != nil {
		return nil, err
	}
	if err := refresher.Refresh(ctx); err != nil {
		// Walmart answers empty until a scheduled refresh succeeds.
		log.Error("initial offer mapping load failed", "error", err)
	}
	refresher.Start()
	a.closers = append(a.closers, func() { <-refresher.Stop().Done() })

	return holder, nil
}

func newKrogerClient(cfg *config.Config, manager *auth.Manager, log *slog.Logger) *kroger.Client {
	rl := cfg.Kroger.RateLimit
	return kroger.NewClient(manager.For(domain.VendorKroger),
		kroger.WithBaseURL(cfg.Kroger.BaseURL),
		kroger.WithHTTPClient(&http.Client{Timeout: cfg.Kroger.Timeout}),
		kroger.WithRateLimiter(adapter.NewRateLimiter(domain.VendorKroger, rl.PerSecond, rl.Burst, rl.DailyLimit)),
		kroger.WithDefaultLocationID(cfg.Kroger.DefaultLocationID),
		kroger.WithResultLimit(cfg.Kroger.ResultLimit),
		kroger.WithLogger(log),
	)
}

func newWalmartClient(
	cfg *config.Config,
	manager *auth.Manager,
	holder *offers.Holder,
	log *slog.Logger,
) *walmart.Client {
	rl := cfg.Walmart.RateLimit
	return walmart.NewClient(manager.For(domain.VendorWalmart), holder,
		walmart.WithBaseURL(cfg.Walmart.BaseURL),
		walmart.WithHTTPClient(&http.Client{Timeout: cfg.Walmart.Timeout}),
		walmart.WithRateLimiter(adapter.NewRateLimiter(domain.VendorWalmart, rl.PerSecond, rl.Burst, rl.DailyLimit)),
		walmart.WithConsumerID(cfg.Walmart.ConsumerID),
		walmart.WithLogger(log),
	)
}
