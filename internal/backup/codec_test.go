package backup

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/guttosm/pizzeria-stock/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() model.Snapshot {
	snap := model.EmptySnapshot()
	snap.Orders.Set("Calabresa", "Segunda-Feira", 10)
	snap.Orders.Set("Frango", "Terça-Feira", 5)
	snap.Deliveries = []model.DeliveryEvent{
		{
			ID:         1,
			Day:        "Segunda-Feira",
			Recipient:  "Ana",
			Note:       "entrega da tarde",
			Items:      map[model.Flavor]int{"Calabresa": 4},
			Total:      4,
			RecordedAt: time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Day:         "Segunda-Feira",
			Recipient:   "Bruno",
			Items:       map[model.Flavor]int{"Calabresa": 8},
			Total:       8,
			RecordedAt:  time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
			HasOverflow: true,
			Overflow:    []model.OverflowFlag{{Flavor: "Calabresa", Ordered: 10, Excess: 2}},
		},
	}
	return snap
}

// TestEncodeDecode_RoundTrip verifies the canonical schema survives a full cycle.
func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := sampleSnapshot()

	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, original.Orders, decoded.Orders)
	assert.Equal(t, original.Deliveries, decoded.Deliveries)
}

// TestEncode_CanonicalFieldNames pins the emitted schema.
func TestEncode_CanonicalFieldNames(t *testing.T) {
	data, err := Encode(sampleSnapshot())
	require.NoError(t, err)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &top))
	assert.Contains(t, top, "orders")
	assert.Contains(t, top, "deliveries")
	assert.NotContains(t, top, "pedidos")
	assert.NotContains(t, top, "retiradas")
	assert.NotContains(t, top, "exported_at", "plain encode carries no export stamp")

	var docs []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(top["deliveries"], &docs))
	require.Len(t, docs, 2)
	assert.Contains(t, docs[0], "name")
	assert.Contains(t, docs[0], "items")
	assert.Contains(t, docs[1], "overflow")
	assert.NotContains(t, docs[0], "nome")
	assert.NotContains(t, docs[0], "pizzas")
}

// TestEncodeExport stamps the export time.
func TestEncodeExport(t *testing.T) {
	exportedAt := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	data, err := EncodeExport(sampleSnapshot(), exportedAt)
	require.NoError(t, err)

	var top struct {
		ExportedAt time.Time `json:"exported_at"`
	}
	require.NoError(t, json.Unmarshal(data, &top))
	assert.True(t, exportedAt.Equal(top.ExportedAt))
}

// TestEncode_EmptySnapshot verifies empty collections serialize as empty,
// not null.
func TestEncode_EmptySnapshot(t *testing.T) {
	data, err := Encode(model.Snapshot{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"orders": {}, "deliveries": []}`, string(data))
}

// TestDecode_LegacySchema tests a document written by the old desktop app.
func TestDecode_LegacySchema(t *testing.T) {
	legacy := `{
		"pedidos": {
			"Calabresa": {"Segunda-Feira": 10}
		},
		"retiradas": [
			{
				"id": 1,
				"dia": "Segunda-Feira",
				"nome": "Ana",
				"observacoes": "cliente antigo",
				"pizzas": {"Calabresa": 4},
				"total": 4,
				"data": "10/03/2025 12:30:00",
				"tem_excedente": false
			},
			{
				"id": 2,
				"dia": "Segunda-Feira",
				"nome": "Bruno",
				"pizzas": {"Calabresa": 8},
				"data": "10/03/2025 14:00:00",
				"tem_excedente": true,
				"excedentes": [
					{"sabor": "Calabresa", "pedido": 10, "excedente": 2}
				]
			}
		]
	}`

	snap, err := Decode([]byte(legacy))
	require.NoError(t, err)

	assert.Equal(t, 10, snap.Orders.Get("Calabresa", "Segunda-Feira"))
	require.Len(t, snap.Deliveries, 2)

	first := snap.Deliveries[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, model.Day("Segunda-Feira"), first.Day)
	assert.Equal(t, "Ana", first.Recipient)
	assert.Equal(t, "cliente antigo", first.Note)
	assert.Equal(t, map[model.Flavor]int{"Calabresa": 4}, first.Items)
	assert.Equal(t, 4, first.Total)
	assert.Equal(t, time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC), first.RecordedAt)
	assert.False(t, first.HasOverflow)

	second := snap.Deliveries[1]
	assert.Equal(t, 8, second.Total, "omitted total is recomputed from the items")
	assert.True(t, second.HasOverflow)
	require.Len(t, second.Overflow, 1)
	assert.Equal(t, model.OverflowFlag{Flavor: "Calabresa", Ordered: 10, Excess: 2}, second.Overflow[0])
}

// TestDecode_LegacyRewritesCanonical verifies a legacy import re-encodes in
// the canonical schema.
func TestDecode_LegacyRewritesCanonical(t *testing.T) {
	legacy := `{"pedidos": {"Frango": {"Terça-Feira": 3}}, "retiradas": []}`

	snap, err := Decode([]byte(legacy))
	require.NoError(t, err)

	data, err := Encode(snap)
	require.NoError(t, err)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &top))
	assert.Contains(t, top, "orders")
	assert.NotContains(t, top, "pedidos")
}

// TestDecode_Errors tests rejection of broken documents.
func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{name: "not json at all", input: `pizza`, expectedErr: ErrMalformedBackup},
		{name: "truncated document", input: `{"orders": {`, expectedErr: ErrMalformedBackup},
		{name: "top-level array", input: `[1, 2, 3]`, expectedErr: ErrMalformedBackup},
		{name: "no recognized collections", input: `{"foo": 1, "bar": 2}`, expectedErr: ErrInvalidSchema},
		{name: "empty object", input: `{}`, expectedErr: ErrInvalidSchema},
		{name: "orders wrong shape", input: `{"orders": [1, 2]}`, expectedErr: ErrMalformedBackup},
		{name: "deliveries wrong shape", input: `{"deliveries": {"a": 1}}`, expectedErr: ErrMalformedBackup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

// TestDecode_PartialDocuments verifies one present collection is enough.
func TestDecode_PartialDocuments(t *testing.T) {
	t.Run("orders only", func(t *testing.T) {
		snap, err := Decode([]byte(`{"orders": {"Calabresa": {"Segunda-Feira": 5}}}`))
		require.NoError(t, err)
		assert.Equal(t, 5, snap.Orders.Get("Calabresa", "Segunda-Feira"))
		assert.Empty(t, snap.Deliveries)
	})

	t.Run("deliveries only", func(t *testing.T) {
		snap, err := Decode([]byte(`{"deliveries": []}`))
		require.NoError(t, err)
		assert.NotNil(t, snap.Orders)
		assert.Empty(t, snap.Deliveries)
	})

	t.Run("null collections decode as empty", func(t *testing.T) {
		snap, err := Decode([]byte(`{"orders": null, "deliveries": null}`))
		require.NoError(t, err)
		assert.NotNil(t, snap.Orders)
		assert.Empty(t, snap.Deliveries)
	})
}

// TestDecode_HasOverflowInference verifies the flag is derived from the
// overflow list when neither schema carries it explicitly.
func TestDecode_HasOverflowInference(t *testing.T) {
	input := `{"deliveries": [
		{"id": 1, "day": "Segunda-Feira", "name": "Ana", "items": {"Calabresa": 2}, "total": 2,
		 "overflow": [{"flavor": "Calabresa", "ordered": 0, "excess": 2}]},
		{"id": 2, "day": "Segunda-Feira", "name": "Bruno", "items": {"Frango": 1}, "total": 1}
	]}`

	snap, err := Decode([]byte(input))
	require.NoError(t, err)
	require.Len(t, snap.Deliveries, 2)
	assert.True(t, snap.Deliveries[0].HasOverflow)
	assert.False(t, snap.Deliveries[1].HasOverflow)
}

// TestDecode_Timestamps tests the layered timestamp parsing.
func TestDecode_Timestamps(t *testing.T) {
	tests := []struct {
		name     string
		stamp    string
		expected time.Time
	}{
		{name: "rfc3339", stamp: "2025-03-10T12:30:00Z", expected: time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)},
		{name: "legacy layout", stamp: "10/03/2025 12:30:00", expected: time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)},
		{name: "garbage decodes to zero time", stamp: "yesterday-ish", expected: time.Time{}},
		{name: "empty decodes to zero time", stamp: "", expected: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := `{"deliveries": [{"id": 1, "day": "Segunda-Feira", "name": "Ana", "items": {"Calabresa": 1}, "total": 1, "timestamp": "` + tt.stamp + `"}]}`
			snap, err := Decode([]byte(input))
			require.NoError(t, err)
			require.Len(t, snap.Deliveries, 1)
			assert.Equal(t, tt.expected, snap.Deliveries[0].RecordedAt)
		})
	}
}
