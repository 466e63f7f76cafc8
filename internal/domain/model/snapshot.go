package model

// OrderTable maps flavor and day to the configured quantity ordered.
// The table is sparse: an absent cell means the same as an explicit zero.
type OrderTable map[Flavor]map[Day]int

// Get returns the ordered quantity for the cell, or 0 when absent.
func (t OrderTable) Get(f Flavor, d Day) int {
	if days, ok := t[f]; ok {
		return days[d]
	}
	return 0
}

// Set overwrites the cell unconditionally.
func (t OrderTable) Set(f Flavor, d Day, quantity int) {
	days, ok := t[f]
	if !ok {
		days = make(map[Day]int)
		t[f] = days
	}
	days[d] = quantity
}

// Clone returns a deep copy of the table.
func (t OrderTable) Clone() OrderTable {
	out := make(OrderTable, len(t))
	for f, days := range t {
		cp := make(map[Day]int, len(days))
		for d, q := range days {
			cp[d] = q
		}
		out[f] = cp
	}
	return out
}

// Snapshot is a materialized view of the whole ledger: the order table
// plus the delivery log. Reconciliation operates on snapshot values only,
// never on shared mutable state.
type Snapshot struct {
	Orders     OrderTable      `json:"orders"`
	Deliveries []DeliveryEvent `json:"deliveries"`
}

// EmptySnapshot returns a snapshot with initialized, empty collections.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Orders:     make(OrderTable),
		Deliveries: []DeliveryEvent{},
	}
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Orders:     s.Orders.Clone(),
		Deliveries: make([]DeliveryEvent, len(s.Deliveries)),
	}
	for i, e := range s.Deliveries {
		out.Deliveries[i] = e.Clone()
	}
	return out
}

// NextDeliveryID returns the id the next recorded delivery receives:
// one more than the highest id ever present in the log. Ids of deleted
// events are not reused.
func (s Snapshot) NextDeliveryID() int {
	max := 0
	for _, e := range s.Deliveries {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}
