package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-stock/internal/domain/dto"
	"github.com/guttosm/pizzeria-stock/internal/domain/model"
	"github.com/guttosm/pizzeria-stock/internal/i18n"
	"github.com/guttosm/pizzeria-stock/internal/metrics"
	"github.com/guttosm/pizzeria-stock/internal/service"
)

// DeliveryHandler provides HTTP handlers for the delivery log.
type DeliveryHandler struct {
	ledger service.Ledger
}

// NewDeliveryHandler creates a new DeliveryHandler instance.
func NewDeliveryHandler(ledger service.Ledger) *DeliveryHandler {
	return &DeliveryHandler{ledger: ledger}
}

// respondLedgerError maps a ledger error to an HTTP error response.
// Validation failures become 400s carrying the failing field; everything
// else is a persistence problem and surfaces as a 500.
func respondLedgerError(b *ResponseBuilder, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		b.ErrorWithMessage(http.StatusBadRequest, verr.Error(), err)
		return
	}
	b.Error(http.StatusInternalServerError, i18n.ErrKeyStoreUnavailable, err)
}

// RecordDelivery handles POST /api/deliveries requests.
//
// @Summary      Record a delivery
// @Description  Validates and appends a delivery event. Over-delivery does not reject the event; the response carries overflow flags computed against the stock at recording time so the caller can warn the operator.
// @Tags         Deliveries
// @Accept       json
// @Produce      json
// @Param        request body dto.RecordDeliveryRequest true "Delivery information"
// @Success      201 {object} dto.SuccessResponse "Recorded event, including overflow flags"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/deliveries [post]
func (h *DeliveryHandler) RecordDelivery(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.RecordDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	items := make(map[model.Flavor]int, len(req.Items))
	for f, q := range req.Items {
		items[model.Flavor(f)] = q
	}

	start := time.Now()
	event, err := h.ledger.RecordDelivery(c.Request.Context(), model.Day(req.Day), req.Name, req.Note, items)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			metrics.RecordDelivery(time.Since(start), "validation_error", 0)
		} else {
			metrics.RecordDelivery(time.Since(start), "error", 0)
		}
		respondLedgerError(builder, err)
		return
	}

	metrics.RecordDelivery(time.Since(start), "success", len(event.Overflow))
	builder.SuccessCreated(event)
}

// ListDeliveries handles GET /api/deliveries requests.
//
// @Summary      List deliveries
// @Description  Returns the delivery history, newest first.
// @Tags         Deliveries
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Delivery events"
// @Router       /api/deliveries [get]
func (h *DeliveryHandler) ListDeliveries(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snap := h.ledger.Snapshot()
	events := make([]model.DeliveryEvent, 0, len(snap.Deliveries))
	for i := len(snap.Deliveries) - 1; i >= 0; i-- {
		events = append(events, snap.Deliveries[i])
	}

	builder.SuccessOK(events)
}

// DeleteDelivery handles DELETE /api/deliveries/:id requests.
//
// @Summary      Delete a delivery
// @Description  Removes the delivery with the given id. Deleting a missing id is a no-op and reports deleted=false; surviving events keep their ids.
// @Tags         Deliveries
// @Produce      json
// @Param        id path int true "Delivery id"
// @Success      200 {object} dto.SuccessResponse "Delete outcome"
// @Failure      400 {object} dto.ErrorResponse "Bad request - id is not an integer"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/deliveries/{id} [delete]
func (h *DeliveryHandler) DeleteDelivery(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	deleted, err := h.ledger.DeleteDelivery(c.Request.Context(), id)
	if err != nil {
		respondLedgerError(builder, err)
		return
	}

	builder.SuccessOK(dto.DeleteDeliveryResponse{ID: id, Deleted: deleted})
}
