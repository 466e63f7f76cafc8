package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-stock/internal/domain/dto"
	"github.com/guttosm/pizzeria-stock/internal/domain/model"
	"github.com/guttosm/pizzeria-stock/internal/i18n"
	"github.com/guttosm/pizzeria-stock/internal/service"
)

// OrdersHandler provides HTTP handlers for the order table.
type OrdersHandler struct {
	ledger service.Ledger
}

// NewOrdersHandler creates a new OrdersHandler instance.
func NewOrdersHandler(ledger service.Ledger) *OrdersHandler {
	return &OrdersHandler{ledger: ledger}
}

// SetOrdered handles PUT /api/orders requests.
//
// @Summary      Configure ordered quantity
// @Description  Overwrites the ordered quantity for one flavor/day cell. Setting a cell never rewrites overflow flags on deliveries that were already recorded.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request body dto.SetOrderedRequest true "Cell to configure"
// @Success      200 {object} dto.SuccessResponse "Updated order table"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/orders [put]
func (h *OrdersHandler) SetOrdered(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SetOrderedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	err := h.ledger.SetOrdered(c.Request.Context(), model.Flavor(req.Flavor), model.Day(req.Day), req.Quantity)
	if err != nil {
		respondLedgerError(builder, err)
		return
	}

	builder.SuccessOK(h.ledger.Snapshot().Orders)
}

// GetOrders handles GET /api/orders requests.
//
// @Summary      Read the order table
// @Description  Returns the configured ordered quantity per flavor per day. Absent cells mean zero ordered.
// @Tags         Orders
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Order table"
// @Router       /api/orders [get]
func (h *OrdersHandler) GetOrders(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.ledger.Snapshot().Orders)
}
