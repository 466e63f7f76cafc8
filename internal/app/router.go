// Package app provides router configuration.
package app

import (
	"context"

	"github.com/guttosm/pizzeria-stock/config"
	"github.com/guttosm/pizzeria-stock/internal/http"
	"github.com/guttosm/pizzeria-stock/internal/repository"
	"github.com/guttosm/pizzeria-stock/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(ledger service.Ledger, store repository.SnapshotRepository, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	// Readiness fails when the data file cannot be read.
	healthHandler.RegisterChecker("store", http.HealthCheckFunc(func() error {
		_, err := store.Load(context.Background())
		return err
	}))

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		Ledger:         ledger,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
