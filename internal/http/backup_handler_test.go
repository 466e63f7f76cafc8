package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/guttosm/pizzeria-stock/internal/domain/dto"
	"github.com/guttosm/pizzeria-stock/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportBackup(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(router, http.MethodPut, "/api/orders", `{"flavor": "Calabresa", "day": "Segunda-Feira", "quantity": 10}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodPost, "/api/deliveries", `{"day": "Segunda-Feira", "name": "Ana", "items": {"Calabresa": 4}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/api/backup", "")
	require.Equal(t, http.StatusOK, w.Code)

	disposition := w.Header().Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(disposition, "attachment; filename=backup_pizzaria_"), disposition)
	assert.True(t, strings.HasSuffix(disposition, ".json"), disposition)

	var doc struct {
		Orders     model.OrderTable      `json:"orders"`
		Deliveries []model.DeliveryEvent `json:"deliveries"`
		ExportedAt string                `json:"exported_at"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, 10, doc.Orders.Get("Calabresa", "Segunda-Feira"))
	require.Len(t, doc.Deliveries, 1)
	assert.Equal(t, "Ana", doc.Deliveries[0].Recipient)
	assert.NotEmpty(t, doc.ExportedAt)
}

func TestExportCSV(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/deliveries", `{"day": "Segunda-Feira", "name": "Ana", "items": {"Calabresa": 4}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/api/backup/csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "retiradas_")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,day,total_pizzas,pizzas,note,timestamp", lines[0])
	assert.Contains(t, lines[1], "Ana")
	assert.Contains(t, lines[1], "Calabresa x4")
}

func TestImportBackup(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
		checkResponse  func(*testing.T, *model.Snapshot)
	}{
		{
			name: "canonical document",
			body: `{
				"orders": {"Calabresa": {"Segunda-Feira": 10}},
				"deliveries": [
					{"id": 1, "day": "Segunda-Feira", "name": "Ana", "items": {"Calabresa": 4}, "total": 4, "timestamp": "2025-03-10T12:30:00Z", "has_overflow": false}
				]
			}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, snap *model.Snapshot) {
				assert.Equal(t, 10, snap.Orders.Get("Calabresa", "Segunda-Feira"))
				require.Len(t, snap.Deliveries, 1)
				assert.Equal(t, "Ana", snap.Deliveries[0].Recipient)
			},
		},
		{
			name: "legacy document",
			body: `{
				"pedidos": {"Frango": {"Terça-Feira": 5}},
				"retiradas": [
					{"id": 7, "dia": "Terça-Feira", "nome": "Bruno", "pizzas": {"Frango": 2}, "total": 2, "data": "11/03/2025 18:00:00", "tem_excedente": false}
				]
			}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, snap *model.Snapshot) {
				assert.Equal(t, 5, snap.Orders.Get("Frango", "Terça-Feira"))
				require.Len(t, snap.Deliveries, 1)
				assert.Equal(t, 7, snap.Deliveries[0].ID)
				assert.Equal(t, "Bruno", snap.Deliveries[0].Recipient)
			},
		},
		{
			name:           "malformed document",
			body:           `{ broken`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  dto.ErrCodeInvalidRequest,
		},
		{
			name:           "unrecognized schema",
			body:           `{"flavors": [], "weeks": []}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  dto.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ledger := setupRouter(t)
			w := doJSON(router, http.MethodPost, "/api/backup", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			if tt.checkResponse != nil {
				snap := ledger.Snapshot()
				tt.checkResponse(t, &snap)
			}
		})
	}
}

func TestImportBackup_ReplacesExistingState(t *testing.T) {
	router, ledger := setupRouter(t)

	w := doJSON(router, http.MethodPut, "/api/orders", `{"flavor": "Calabresa", "day": "Segunda-Feira", "quantity": 10}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodPost, "/api/deliveries", `{"day": "Segunda-Feira", "name": "Ana", "items": {"Calabresa": 4}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/backup", `{"orders": {}, "deliveries": []}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result dto.ImportResponse
	unmarshalData(t, w, &result)
	assert.Equal(t, 0, result.Deliveries)
	assert.Equal(t, 0, result.OrderRows)

	snap := ledger.Snapshot()
	assert.Empty(t, snap.Orders, "import is a full overwrite, not a merge")
	assert.Empty(t, snap.Deliveries)
}

func TestImportBackup_RejectedImportKeepsState(t *testing.T) {
	router, ledger := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/api/deliveries", `{"day": "Segunda-Feira", "name": "Ana", "items": {"Calabresa": 4}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/backup", `{ not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	assert.Len(t, ledger.Snapshot().Deliveries, 1, "a rejected import leaves state untouched")
}

func TestClearLedger(t *testing.T) {
	router, ledger := setupRouter(t)

	w := doJSON(router, http.MethodPut, "/api/orders", `{"flavor": "Calabresa", "day": "Segunda-Feira", "quantity": 10}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodPost, "/api/deliveries", `{"day": "Segunda-Feira", "name": "Ana", "items": {"Calabresa": 4}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/ledger", "")
	require.Equal(t, http.StatusOK, w.Code)

	snap := ledger.Snapshot()
	assert.Empty(t, snap.Orders)
	assert.Empty(t, snap.Deliveries)
}
