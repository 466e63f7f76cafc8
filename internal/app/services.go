// Package app provides service initialization.
package app

import (
	"context"

	"github.com/guttosm/pizzeria-stock/config"
	"github.com/guttosm/pizzeria-stock/internal/domain/model"
	"github.com/guttosm/pizzeria-stock/internal/repository"
	"github.com/guttosm/pizzeria-stock/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Ledger service.Ledger
}

// InitializeServices builds the catalog and loads the ledger from the store.
func InitializeServices(ctx context.Context, cfg config.CatalogConfig, store repository.SnapshotRepository) (*ServiceComponents, error) {
	catalog := model.NewCatalog(toFlavors(cfg.Flavors), toDays(cfg.Days))

	ledger, err := service.NewLedgerService(ctx, catalog, store)
	if err != nil {
		return nil, err
	}

	return &ServiceComponents{
		Ledger: ledger,
	}, nil
}

func toFlavors(values []string) []model.Flavor {
	out := make([]model.Flavor, 0, len(values))
	for _, v := range values {
		out = append(out, model.Flavor(v))
	}
	return out
}

func toDays(values []string) []model.Day {
	out := make([]model.Day, 0, len(values))
	for _, v := range values {
		out = append(out, model.Day(v))
	}
	return out
}
