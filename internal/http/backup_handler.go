package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-stock/internal/backup"
	"github.com/guttosm/pizzeria-stock/internal/domain/dto"
	"github.com/guttosm/pizzeria-stock/internal/i18n"
	"github.com/guttosm/pizzeria-stock/internal/metrics"
	"github.com/guttosm/pizzeria-stock/internal/service"
)

// BackupHandler provides HTTP handlers for export, import and clear.
type BackupHandler struct {
	ledger service.Ledger
	now    func() time.Time
}

// BackupHandlerOption configures a BackupHandler.
type BackupHandlerOption func(*BackupHandler)

// WithBackupClock overrides the export timestamp source. Intended for tests.
func WithBackupClock(now func() time.Time) BackupHandlerOption {
	return func(h *BackupHandler) {
		h.now = now
	}
}

// NewBackupHandler creates a new BackupHandler instance.
func NewBackupHandler(ledger service.Ledger, opts ...BackupHandlerOption) *BackupHandler {
	h := &BackupHandler{
		ledger: ledger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Export handles GET /api/backup requests.
//
// @Summary      Export the ledger
// @Description  Serializes the whole ledger (order table and delivery log) in the canonical JSON schema, stamped with the export time, as a downloadable file.
// @Tags         Backup
// @Produce      json
// @Success      200 {string} string "Backup document"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/backup [get]
func (h *BackupHandler) Export(c *gin.Context) {
	builder := NewResponseBuilder(c)

	exportedAt := h.now()
	data, err := backup.EncodeExport(h.ledger.Snapshot(), exportedAt)
	if err != nil {
		metrics.RecordBackup("export", "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	metrics.RecordBackup("export", "success")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=backup_pizzaria_%s.json", exportedAt.Format("20060102_150405")))
	c.Data(http.StatusOK, "application/json", data)
}

// ExportCSV handles GET /api/backup/csv requests.
//
// @Summary      Export deliveries as CSV
// @Description  Serializes the delivery log as a flat table for spreadsheet consumption, one row per delivery.
// @Tags         Backup
// @Produce      text/csv
// @Success      200 {string} string "CSV table"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/backup/csv [get]
func (h *BackupHandler) ExportCSV(c *gin.Context) {
	builder := NewResponseBuilder(c)

	data, err := backup.EncodeCSV(h.ledger.Snapshot())
	if err != nil {
		metrics.RecordBackup("export_csv", "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	metrics.RecordBackup("export_csv", "success")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=retiradas_%s.csv", h.now().Format("20060102_150405")))
	c.Data(http.StatusOK, "text/csv", data)
}

// Import handles POST /api/backup requests.
//
// @Summary      Import a backup
// @Description  Parses a backup document (canonical or legacy schema) and atomically replaces the whole ledger state. No partial merge: either the entire import succeeds or the current state stays untouched.
// @Tags         Backup
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Import summary"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed document or unrecognized schema"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/backup [post]
func (h *BackupHandler) Import(c *gin.Context) {
	builder := NewResponseBuilder(c)

	data, err := c.GetRawData()
	if err != nil {
		metrics.RecordBackup("import", "error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	snap, err := backup.Decode(data)
	if err != nil {
		metrics.RecordBackup("import", "rejected")
		switch {
		case errors.Is(err, backup.ErrInvalidSchema):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyBackupSchema, err)
		default:
			builder.Error(http.StatusBadRequest, i18n.ErrKeyBackupMalformed, err)
		}
		return
	}

	if err := h.ledger.Replace(c.Request.Context(), snap); err != nil {
		metrics.RecordBackup("import", "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyStoreUnavailable, err)
		return
	}

	metrics.RecordBackup("import", "success")
	builder.SuccessOK(dto.ImportResponse{
		Deliveries: len(snap.Deliveries),
		OrderRows:  len(snap.Orders),
	})
}

// Clear handles DELETE /api/ledger requests.
//
// @Summary      Clear all data
// @Description  Resets the order table and the delivery log to empty and persists the result.
// @Tags         Backup
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Cleared"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/ledger [delete]
func (h *BackupHandler) Clear(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.ledger.Clear(c.Request.Context()); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyStoreUnavailable, err)
		return
	}

	builder.SuccessOK(gin.H{"cleared": true})
}
