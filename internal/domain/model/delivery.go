package model

import "time"

// OverflowFlag records that a single delivery exceeded the then-remaining
// stock for one flavor. Flags are computed once, at recording time, against
// the order table as it was at that moment; they are never recalculated.
//
// @Description Over-delivery annotation for one flavor of a delivery
// @Example {"flavor": "Calabresa", "ordered": 10, "excess": 2}
type OverflowFlag struct {
	// Flavor is the over-delivered flavor
	Flavor Flavor `json:"flavor" example:"Calabresa"`
	// Ordered is the quantity configured for the flavor/day when the delivery was recorded
	Ordered int `json:"ordered" example:"10"`
	// Excess is how many pizzas were delivered beyond the remaining stock
	Excess int `json:"excess" example:"2"`
}

// DeliveryEvent is one logged withdrawal: pizzas handed to a named
// recipient on a given day. Events are immutable once recorded and are
// removed only by explicit delete-by-id.
//
// @Description A recorded delivery of pizzas to a recipient
type DeliveryEvent struct {
	// ID is unique within the log and monotonically assigned; ids are never reused
	ID int `json:"id" example:"3"`
	// Day the delivery belongs to
	Day Day `json:"day" example:"Segunda-Feira"`
	// Recipient is the trimmed, non-empty name of who took the pizzas
	Recipient string `json:"name" example:"Ana"`
	// Note is optional free text
	Note string `json:"note,omitempty" example:"entrega da tarde"`
	// Items maps flavor to a positive quantity; zero-quantity entries are never stored
	Items map[Flavor]int `json:"items"`
	// Total is the sum of all item quantities
	Total int `json:"total" example:"4"`
	// RecordedAt is fixed at creation time
	RecordedAt time.Time `json:"timestamp"`
	// HasOverflow reports whether any flavor exceeded the remaining stock
	HasOverflow bool `json:"has_overflow" example:"false"`
	// Overflow lists the per-flavor over-delivery annotations, if any
	Overflow []OverflowFlag `json:"overflow,omitempty"`
}

// Clone returns a deep copy of the event.
func (e DeliveryEvent) Clone() DeliveryEvent {
	out := e
	out.Items = make(map[Flavor]int, len(e.Items))
	for f, q := range e.Items {
		out.Items[f] = q
	}
	if e.Overflow != nil {
		out.Overflow = make([]OverflowFlag, len(e.Overflow))
		copy(out.Overflow, e.Overflow)
	}
	return out
}
