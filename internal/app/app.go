// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-stock/config"
	"github.com/guttosm/pizzeria-stock/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(ctx context.Context, cfg config.Config) (*gin.Engine, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize the flat-file store backing the ledger
	store := InitializeStore(cfg.Store)

	// Initialize business services (loads the persisted snapshot)
	serviceComponents, err := InitializeServices(ctx, cfg.Catalog, store)
	if err != nil {
		return nil, err
	}

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents.Ledger, store, cfg)

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config), nil
}
