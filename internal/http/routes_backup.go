package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-stock/internal/service"
)

// BackupRoutes groups the export, import and clear routes.
type BackupRoutes struct {
	handler *BackupHandler
}

// NewBackupRoutes creates the backup route group.
func NewBackupRoutes(ledger service.Ledger) *BackupRoutes {
	return &BackupRoutes{
		handler: NewBackupHandler(ledger),
	}
}

// RegisterRoutes registers the backup routes on the API group.
func (r *BackupRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/backup", r.handler.Export)
	rg.GET("/backup/csv", r.handler.ExportCSV)
	rg.POST("/backup", r.handler.Import)
	rg.DELETE("/ledger", r.handler.Clear)
}
