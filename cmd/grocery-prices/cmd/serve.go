package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/grocery-prices/api/openapi"
	"github.com/donaldgifford/grocery-prices/internal/api/handlers"
	mw "github.com/donaldgifford/grocery-prices/internal/api/middleware"
	"github.com/donaldgifford/grocery-prices/internal/config"
	"github.com/donaldgifford/grocery-prices/pkg/logger"
)

var errServerStopped = errors.New("server stopped")

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	e := newEcho(cfg, log, a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "vendors", cfg.Aggregator.Vendors)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- errServerStopped
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, errServerStopped) {
			return fmt.Errorf("running server: %w", err)
		}
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newEcho(cfg *config.Config, log *slog.Logger, a *app) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(mw.Recovery(log))
	e.Use(mw.RequestLog(log))
	e.Use(mw.Metrics())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(a.checks))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handlers.UseErrorBody()
	api := humaecho.New(e, huma.DefaultConfig("Grocery Prices API", Version))

	handlers.RegisterPriceRoutes(api, handlers.NewPriceHandler(a.aggregator))
	handlers.RegisterLocationRoutes(api, handlers.NewLocationHandler(a.aggregator))
	handlers.RegisterVendorRoutes(api, handlers.NewVendorHandler(a.aggregator))
	openapi.RegisterRoutes(e, api)

	return e
}
