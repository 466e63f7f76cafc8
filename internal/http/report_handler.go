package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-stock/internal/domain/dto"
	"github.com/guttosm/pizzeria-stock/internal/service"
)

// ReportHandler provides HTTP handlers for the reconciliation reports.
type ReportHandler struct {
	ledger service.Ledger
}

// NewReportHandler creates a new ReportHandler instance.
func NewReportHandler(ledger service.Ledger) *ReportHandler {
	return &ReportHandler{ledger: ledger}
}

// Stock handles GET /api/report/stock requests.
//
// @Summary      Stock report grid
// @Description  Returns the reconciled ordered/delivered/remaining numbers and a status for every flavor/day pair in catalog order. Remaining may be negative when more was delivered than ordered.
// @Tags         Reports
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Stock cells"
// @Router       /api/report/stock [get]
func (h *ReportHandler) Stock(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snap := h.ledger.Snapshot()
	builder.SuccessOK(service.Report(snap, h.ledger.Catalog()))
}

// Totals handles GET /api/report/totals requests.
//
// @Summary      Aggregate totals
// @Description  Returns overall ordered/delivered/remaining totals plus a summary of deliveries that exceeded the ordered stock at the time they were recorded.
// @Tags         Reports
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Totals and overflow summary"
// @Router       /api/report/totals [get]
func (h *ReportHandler) Totals(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snap := h.ledger.Snapshot()
	builder.SuccessOK(dto.TotalsResponse{
		Totals:   service.Totals(snap),
		Overflow: service.Overflow(snap),
	})
}
