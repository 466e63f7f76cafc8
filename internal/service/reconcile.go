// Package service implements the business logic of the pizzeria stock
// ledger: reconciliation, delivery recording and order configuration.
package service

import "github.com/guttosm/pizzeria-stock/internal/domain/model"

// The reconciliation engine is a set of pure functions over a snapshot
// value. Nothing here mutates state or fails; remaining stock is always
// derived, never stored.

// OrderedFor returns the configured quantity for the flavor/day cell.
// An absent cell counts as zero.
func OrderedFor(snap model.Snapshot, f model.Flavor, d model.Day) int {
	return snap.Orders.Get(f, d)
}

// DeliveredFor sums the quantities of the flavor across every delivery
// recorded for the day.
func DeliveredFor(snap model.Snapshot, f model.Flavor, d model.Day) int {
	total := 0
	for _, e := range snap.Deliveries {
		if e.Day != d {
			continue
		}
		total += e.Items[f]
	}
	return total
}

// RemainingFor returns ordered minus delivered for the cell. The result
// is negative when more was delivered than ordered.
func RemainingFor(snap model.Snapshot, f model.Flavor, d model.Day) int {
	return OrderedFor(snap, f, d) - DeliveredFor(snap, f, d)
}

// StatusFor classifies the cell. Low stock means strictly less than 20%
// of the ordered quantity remains; the comparison is done in integers
// (remaining*5 < ordered) to avoid floating point.
func StatusFor(snap model.Snapshot, f model.Flavor, d model.Day) model.StockStatus {
	ordered := OrderedFor(snap, f, d)
	if ordered == 0 {
		return model.StatusNotOrdered
	}

	remaining := ordered - DeliveredFor(snap, f, d)
	switch {
	case remaining < 0:
		return model.StatusOver
	case remaining == 0:
		return model.StatusDepleted
	case remaining*5 < ordered:
		return model.StatusLow
	default:
		return model.StatusOK
	}
}

// Totals aggregates ordered and delivered quantities across the whole
// ledger. Delivered sums event totals, so flavors outside the order
// table still count.
func Totals(snap model.Snapshot) model.Totals {
	t := model.Totals{}
	for _, days := range snap.Orders {
		for _, q := range days {
			t.Ordered += q
		}
	}
	for _, e := range snap.Deliveries {
		t.Delivered += e.Total
	}
	t.Remaining = t.Ordered - t.Delivered
	return t
}

// Overflow summarizes the over-delivery annotations carried by the log.
// Flags are snapshots taken at recording time, so this reflects history,
// not the current order table.
func Overflow(snap model.Snapshot) model.OverflowSummary {
	s := model.OverflowSummary{}
	for _, e := range snap.Deliveries {
		if !e.HasOverflow {
			continue
		}
		s.FlaggedDeliveries++
		for _, f := range e.Overflow {
			s.ExcessPizzas += f.Excess
		}
	}
	return s
}

// Report builds the full reconciliation grid in catalog order, one cell
// per flavor/day pair.
func Report(snap model.Snapshot, catalog model.Catalog) []model.StockCell {
	flavors := catalog.Flavors()
	days := catalog.Days()

	cells := make([]model.StockCell, 0, len(flavors)*len(days))
	for _, f := range flavors {
		for _, d := range days {
			ordered := OrderedFor(snap, f, d)
			delivered := DeliveredFor(snap, f, d)
			cells = append(cells, model.StockCell{
				Flavor:    f,
				Day:       d,
				Ordered:   ordered,
				Delivered: delivered,
				Remaining: ordered - delivered,
				Status:    StatusFor(snap, f, d),
			})
		}
	}
	return cells
}
