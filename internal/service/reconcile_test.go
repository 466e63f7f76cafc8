package service

import (
	"testing"

	"github.com/guttosm/pizzeria-stock/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

const (
	monday  = model.Day("Segunda-Feira")
	tuesday = model.Day("Terça-Feira")
)

// TestDeliveredFor tests per-cell delivery aggregation.
func TestDeliveredFor(t *testing.T) {
	snap := model.EmptySnapshot()
	snap.Deliveries = []model.DeliveryEvent{
		{ID: 1, Day: monday, Items: map[model.Flavor]int{"Calabresa": 4, "Frango": 1}, Total: 5},
		{ID: 2, Day: monday, Items: map[model.Flavor]int{"Calabresa": 2}, Total: 2},
		{ID: 3, Day: tuesday, Items: map[model.Flavor]int{"Calabresa": 7}, Total: 7},
	}

	assert.Equal(t, 6, DeliveredFor(snap, "Calabresa", monday), "sums across deliveries of the same day")
	assert.Equal(t, 7, DeliveredFor(snap, "Calabresa", tuesday), "other days do not leak in")
	assert.Equal(t, 1, DeliveredFor(snap, "Frango", monday))
	assert.Equal(t, 0, DeliveredFor(snap, "Mussarela", monday))
}

// TestStatusFor tests the cell classification rules.
func TestStatusFor(t *testing.T) {
	tests := []struct {
		name      string
		ordered   int
		delivered int
		expected  model.StockStatus
	}{
		{name: "nothing configured", ordered: 0, delivered: 0, expected: model.StatusNotOrdered},
		{name: "nothing configured but delivered", ordered: 0, delivered: 3, expected: model.StatusNotOrdered},
		{name: "untouched stock", ordered: 10, delivered: 0, expected: model.StatusOK},
		{name: "comfortable stock", ordered: 10, delivered: 5, expected: model.StatusOK},
		{name: "exactly 20 percent remaining is not low", ordered: 10, delivered: 8, expected: model.StatusOK},
		{name: "below 20 percent remaining", ordered: 10, delivered: 9, expected: model.StatusLow},
		{name: "low without clean percentage", ordered: 7, delivered: 6, expected: model.StatusLow},
		{name: "everything delivered", ordered: 10, delivered: 10, expected: model.StatusDepleted},
		{name: "over-delivered", ordered: 10, delivered: 12, expected: model.StatusOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := model.EmptySnapshot()
			if tt.ordered > 0 {
				snap.Orders.Set("Calabresa", monday, tt.ordered)
			}
			if tt.delivered > 0 {
				snap.Deliveries = []model.DeliveryEvent{
					{ID: 1, Day: monday, Items: map[model.Flavor]int{"Calabresa": tt.delivered}, Total: tt.delivered},
				}
			}
			assert.Equal(t, tt.expected, StatusFor(snap, "Calabresa", monday))
		})
	}
}

// TestRemainingFor_NegativeWhenOverDelivered covers the over-delivery path:
// 10 ordered, 4 then 8 delivered leaves -2 remaining.
func TestRemainingFor_NegativeWhenOverDelivered(t *testing.T) {
	snap := model.EmptySnapshot()
	snap.Orders.Set("Calabresa", monday, 10)
	snap.Deliveries = []model.DeliveryEvent{
		{ID: 1, Day: monday, Items: map[model.Flavor]int{"Calabresa": 4}, Total: 4},
		{ID: 2, Day: monday, Items: map[model.Flavor]int{"Calabresa": 8}, Total: 8},
	}

	assert.Equal(t, -2, RemainingFor(snap, "Calabresa", monday))
	assert.Equal(t, model.StatusOver, StatusFor(snap, "Calabresa", monday))
}

// TestTotals tests whole-ledger aggregation.
func TestTotals(t *testing.T) {
	snap := model.EmptySnapshot()
	snap.Orders.Set("Calabresa", monday, 10)
	snap.Orders.Set("Frango", tuesday, 5)
	snap.Deliveries = []model.DeliveryEvent{
		{ID: 1, Day: monday, Items: map[model.Flavor]int{"Calabresa": 4}, Total: 4},
		// Mussarela has no order row; its total still counts as delivered.
		{ID: 2, Day: monday, Items: map[model.Flavor]int{"Mussarela": 3}, Total: 3},
	}

	totals := Totals(snap)
	assert.Equal(t, 15, totals.Ordered)
	assert.Equal(t, 7, totals.Delivered)
	assert.Equal(t, 8, totals.Remaining)
}

// TestTotals_Empty verifies the zero ledger aggregates to zero.
func TestTotals_Empty(t *testing.T) {
	totals := Totals(model.EmptySnapshot())
	assert.Equal(t, model.Totals{}, totals)
}

// TestOverflow tests the over-delivery summary.
func TestOverflow(t *testing.T) {
	snap := model.EmptySnapshot()
	snap.Deliveries = []model.DeliveryEvent{
		{ID: 1, HasOverflow: true, Overflow: []model.OverflowFlag{
			{Flavor: "Calabresa", Ordered: 10, Excess: 2},
			{Flavor: "Frango", Ordered: 5, Excess: 1},
		}},
		{ID: 2, HasOverflow: false},
		{ID: 3, HasOverflow: true, Overflow: []model.OverflowFlag{
			{Flavor: "Mussarela", Ordered: 0, Excess: 4},
		}},
	}

	summary := Overflow(snap)
	assert.Equal(t, 2, summary.FlaggedDeliveries)
	assert.Equal(t, 7, summary.ExcessPizzas)
}

// TestReport verifies the grid covers every cell in catalog order.
func TestReport(t *testing.T) {
	catalog := model.NewCatalog(
		[]model.Flavor{"Calabresa", "Frango"},
		[]model.Day{monday, tuesday},
	)

	snap := model.EmptySnapshot()
	snap.Orders.Set("Calabresa", monday, 10)
	snap.Deliveries = []model.DeliveryEvent{
		{ID: 1, Day: monday, Items: map[model.Flavor]int{"Calabresa": 4}, Total: 4},
	}

	cells := Report(snap, catalog)
	assert.Len(t, cells, 4)

	assert.Equal(t, model.StockCell{
		Flavor: "Calabresa", Day: monday,
		Ordered: 10, Delivered: 4, Remaining: 6,
		Status: model.StatusOK,
	}, cells[0])
	assert.Equal(t, model.StockCell{
		Flavor: "Calabresa", Day: tuesday,
		Status: model.StatusNotOrdered,
	}, cells[1])
	assert.Equal(t, model.StockCell{
		Flavor: "Frango", Day: monday,
		Status: model.StatusNotOrdered,
	}, cells[2])
	assert.Equal(t, model.StockCell{
		Flavor: "Frango", Day: tuesday,
		Status: model.StatusNotOrdered,
	}, cells[3])
}
