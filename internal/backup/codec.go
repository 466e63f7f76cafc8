// Package backup serializes the full ledger state for export, import and
// flat-file persistence.
//
// Two schemas exist in the wild: the canonical compact one this package
// always emits, and the legacy Portuguese-verbose one written by the old
// desktop app (pedidos/retiradas field names). Decode accepts both;
// Encode and EncodeExport emit only the canonical shape.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/pizzeria-stock/internal/domain/model"
)

var (
	// ErrMalformedBackup is returned when the stream cannot be parsed as JSON.
	ErrMalformedBackup = errors.New("backup document is not valid JSON")

	// ErrInvalidSchema is returned when the document parses but carries
	// neither an orders nor a deliveries collection under any known name.
	ErrInvalidSchema = errors.New("backup document has no recognized collections")
)

// legacyTimeLayout is the timestamp format written by the old desktop app.
const legacyTimeLayout = "02/01/2006 15:04:05"

// document is the canonical on-disk and export shape.
type document struct {
	Orders     model.OrderTable      `json:"orders"`
	Deliveries []model.DeliveryEvent `json:"deliveries"`
	ExportedAt *time.Time            `json:"exported_at,omitempty"`
}

// Encode serializes the snapshot in the canonical schema without an
// export timestamp. This is the shape persisted by the file store.
func Encode(snap model.Snapshot) ([]byte, error) {
	return marshal(document{
		Orders:     snap.Orders,
		Deliveries: snap.Deliveries,
	})
}

// EncodeExport serializes the snapshot in the canonical schema and stamps
// it with the export time.
func EncodeExport(snap model.Snapshot, exportedAt time.Time) ([]byte, error) {
	return marshal(document{
		Orders:     snap.Orders,
		Deliveries: snap.Deliveries,
		ExportedAt: &exportedAt,
	})
}

func marshal(doc document) ([]byte, error) {
	if doc.Orders == nil {
		doc.Orders = make(model.OrderTable)
	}
	if doc.Deliveries == nil {
		doc.Deliveries = []model.DeliveryEvent{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return data, nil
}

// deliveryDoc accepts a delivery event in either schema.
type deliveryDoc struct {
	ID int `json:"id"`

	Day string `json:"day"`
	Dia string `json:"dia"`

	Name string `json:"name"`
	Nome string `json:"nome"`

	Note        string `json:"note"`
	Observacoes string `json:"observacoes"`

	Items  map[model.Flavor]int `json:"items"`
	Pizzas map[model.Flavor]int `json:"pizzas"`

	Total int `json:"total"`

	Timestamp string `json:"timestamp"`
	Data      string `json:"data"`

	HasOverflow  *bool `json:"has_overflow"`
	TemExcedente *bool `json:"tem_excedente"`

	Overflow   []overflowDoc `json:"overflow"`
	Excedentes []overflowDoc `json:"excedentes"`
}

// overflowDoc accepts an overflow flag in either schema.
type overflowDoc struct {
	Flavor model.Flavor `json:"flavor"`
	Sabor  model.Flavor `json:"sabor"`

	Ordered *int `json:"ordered"`
	Pedido  *int `json:"pedido"`

	Excess    *int `json:"excess"`
	Excedente *int `json:"excedente"`
}

// Decode parses a backup stream in either the canonical or the legacy
// schema into a snapshot. Structural validation only: per-event business
// rules are deliberately not re-applied on import.
func Decode(data []byte) (model.Snapshot, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}

	rawOrders, hasOrders := firstPresent(top, "orders", "pedidos")
	rawDeliveries, hasDeliveries := firstPresent(top, "deliveries", "retiradas")
	if !hasOrders && !hasDeliveries {
		return model.Snapshot{}, ErrInvalidSchema
	}

	snap := model.EmptySnapshot()

	if hasOrders {
		if err := json.Unmarshal(rawOrders, &snap.Orders); err != nil {
			return model.Snapshot{}, fmt.Errorf("%w: orders: %v", ErrMalformedBackup, err)
		}
		if snap.Orders == nil {
			snap.Orders = make(model.OrderTable)
		}
	}

	if hasDeliveries {
		var docs []deliveryDoc
		if err := json.Unmarshal(rawDeliveries, &docs); err != nil {
			return model.Snapshot{}, fmt.Errorf("%w: deliveries: %v", ErrMalformedBackup, err)
		}
		snap.Deliveries = make([]model.DeliveryEvent, 0, len(docs))
		for _, doc := range docs {
			snap.Deliveries = append(snap.Deliveries, doc.toEvent())
		}
	}

	return snap, nil
}

func firstPresent(top map[string]json.RawMessage, keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if raw, ok := top[k]; ok {
			return raw, true
		}
	}
	return nil, false
}

// toEvent normalizes a decoded delivery to the canonical model, preferring
// canonical fields and falling back to the legacy ones.
func (d deliveryDoc) toEvent() model.DeliveryEvent {
	e := model.DeliveryEvent{
		ID:        d.ID,
		Day:       model.Day(pick(d.Day, d.Dia)),
		Recipient: pick(d.Name, d.Nome),
		Note:      pick(d.Note, d.Observacoes),
		Total:     d.Total,
	}

	items := d.Items
	if items == nil {
		items = d.Pizzas
	}
	e.Items = make(map[model.Flavor]int, len(items))
	for f, q := range items {
		e.Items[f] = q
	}

	// Legacy documents occasionally omit the precomputed total.
	if e.Total == 0 {
		for _, q := range e.Items {
			e.Total += q
		}
	}

	e.RecordedAt = parseTimestamp(pick(d.Timestamp, d.Data))

	flags := d.Overflow
	if flags == nil {
		flags = d.Excedentes
	}
	for _, f := range flags {
		e.Overflow = append(e.Overflow, model.OverflowFlag{
			Flavor:  model.Flavor(pick(string(f.Flavor), string(f.Sabor))),
			Ordered: pickInt(f.Ordered, f.Pedido),
			Excess:  pickInt(f.Excess, f.Excedente),
		})
	}

	switch {
	case d.HasOverflow != nil:
		e.HasOverflow = *d.HasOverflow
	case d.TemExcedente != nil:
		e.HasOverflow = *d.TemExcedente
	default:
		e.HasOverflow = len(e.Overflow) > 0
	}

	return e
}

func pick(canonical, legacy string) string {
	if canonical != "" {
		return canonical
	}
	return legacy
}

func pickInt(canonical, legacy *int) int {
	if canonical != nil {
		return *canonical
	}
	if legacy != nil {
		return *legacy
	}
	return 0
}

// parseTimestamp tries the canonical RFC 3339 layout first, then the
// legacy desktop-app layout. Unparseable stamps decode to the zero time
// rather than failing the whole import.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse(legacyTimeLayout, s); err == nil {
		return t
	}
	return time.Time{}
}
