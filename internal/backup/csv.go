package backup

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/pizzeria-stock/internal/domain/model"
)

// csvHeader is the column layout of the tabular export, intended for
// spreadsheet consumption.
var csvHeader = []string{"name", "day", "total_pizzas", "pizzas", "note", "timestamp"}

// EncodeCSV serializes the delivery log as a flat table, one row per
// delivery event. The order table is not part of the tabular export.
func EncodeCSV(snap model.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}

	for _, e := range snap.Deliveries {
		row := []string{
			e.Recipient,
			string(e.Day),
			strconv.Itoa(e.Total),
			itemSummary(e.Items),
			e.Note,
			formatTimestamp(e.RecordedAt),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("encode csv: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}
	return buf.Bytes(), nil
}

// itemSummary renders the item map as a stable human-readable string,
// e.g. "Calabresa x4; Frango x2".
func itemSummary(items map[model.Flavor]int) string {
	flavors := make([]string, 0, len(items))
	for f := range items {
		flavors = append(flavors, string(f))
	}
	sort.Strings(flavors)

	parts := make([]string, 0, len(flavors))
	for _, f := range flavors {
		parts = append(parts, fmt.Sprintf("%s x%d", f, items[model.Flavor(f)]))
	}
	return strings.Join(parts, "; ")
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
