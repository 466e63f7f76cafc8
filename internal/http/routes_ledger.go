package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-stock/internal/service"
)

// LedgerRoutes groups the delivery, order-table and report routes.
type LedgerRoutes struct {
	deliveries *DeliveryHandler
	orders     *OrdersHandler
	reports    *ReportHandler
}

// NewLedgerRoutes creates the ledger route group.
func NewLedgerRoutes(ledger service.Ledger) *LedgerRoutes {
	return &LedgerRoutes{
		deliveries: NewDeliveryHandler(ledger),
		orders:     NewOrdersHandler(ledger),
		reports:    NewReportHandler(ledger),
	}
}

// RegisterRoutes registers the ledger routes on the API group.
func (r *LedgerRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/deliveries", r.deliveries.RecordDelivery)
	rg.GET("/deliveries", r.deliveries.ListDeliveries)
	rg.DELETE("/deliveries/:id", r.deliveries.DeleteDelivery)

	rg.PUT("/orders", r.orders.SetOrdered)
	rg.GET("/orders", r.orders.GetOrders)

	rg.GET("/report/stock", r.reports.Stock)
	rg.GET("/report/totals", r.reports.Totals)
}
