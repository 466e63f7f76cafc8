// Package main is the entry point for the pizzeria stock service.
//
// @title           Pizzeria Stock API
// @version         1.0.0
// @description     API for tracking pizza orders against deliveries per flavor and weekday.
//
//	The service keeps a single flat-file ledger: configured order quantities, a delivery
//	log with over-delivery annotations, and reconciliation reports derived from both.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/pizzeria-stock
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Deliveries
// @tag.description Delivery log operations
//
// @tag.name        Orders
// @tag.description Order table configuration
//
// @tag.name        Reports
// @tag.description Stock reconciliation reports
//
// @tag.name        Backup
// @tag.description Export, import and clear operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/guttosm/pizzeria-stock/docs" // swagger docs

	"github.com/guttosm/pizzeria-stock/config"
	"github.com/guttosm/pizzeria-stock/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router, err := app.InitializeApp(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization error")
	}

	server := app.NewServer(router, cfg.Server.Port)
	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
