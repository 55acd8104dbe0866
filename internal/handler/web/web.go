// Package web contains the web server and registered routes
package web

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/venafi/keystore-migrator/internal/app/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ReportService ...
type ReportService interface {
	HandleGetMigrationReport(c echo.Context) error
}

// ConfigureHTTPServers creates an HTTP server serving health, metrics and the migration report.
// The server is only started when http.enabled is set.
func ConfigureHTTPServers(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if !cfg.HTTP.Enabled {
		zap.L().Info("http server disabled")
		return e, nil
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				zap.L().Info("starting http server", zap.String("address", cfg.HTTP.Address))
				if err := e.Start(cfg.HTTP.Address); err != nil && err != http.ErrServerClosed {
					zap.L().Error("failed to start echo server", zap.Error(err))
					if err = shutdowner.Shutdown(); err != nil {
						zap.L().Error("fx shutdown error", zap.Error(err))
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return e, nil
}

// RegisterHandlers will add the health, metrics and report routes
func RegisterHandlers(e *echo.Echo, reportService ReportService, gatherer prometheus.Gatherer) error {
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	g := e.Group("/v1")
	g.GET("/migration/report", reportService.HandleGetMigrationReport)

	return nil
}
