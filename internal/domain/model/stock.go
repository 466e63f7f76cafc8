package model

// StockStatus classifies the remaining stock of one flavor/day cell.
type StockStatus string

const (
	// StatusNotOrdered means nothing was configured for the cell.
	StatusNotOrdered StockStatus = "not_ordered"
	// StatusDepleted means everything ordered has been delivered.
	StatusDepleted StockStatus = "depleted"
	// StatusLow means less than 20% of the ordered quantity remains.
	StatusLow StockStatus = "low"
	// StatusOK means comfortable stock remains.
	StatusOK StockStatus = "ok"
	// StatusOver means more was delivered than ordered.
	StatusOver StockStatus = "over"
)

// StockCell is one reconciled cell of the stock report grid.
//
// @Description Reconciled stock for one flavor on one day
type StockCell struct {
	Flavor    Flavor `json:"flavor" example:"Calabresa"`
	Day       Day    `json:"day" example:"Segunda-Feira"`
	Ordered   int    `json:"ordered" example:"10"`
	Delivered int    `json:"delivered" example:"4"`
	// Remaining is ordered minus delivered; negative when over-delivered
	Remaining int         `json:"remaining" example:"6"`
	Status    StockStatus `json:"status" example:"ok"`
}

// Totals aggregates the ledger across all flavors, days and deliveries.
//
// @Description Aggregate ordered/delivered/remaining totals
type Totals struct {
	Ordered   int `json:"total_ordered" example:"30"`
	Delivered int `json:"total_delivered" example:"12"`
	Remaining int `json:"total_remaining" example:"18"`
}

// OverflowSummary aggregates the over-delivery annotations in the log.
//
// @Description Summary of deliveries that exceeded the ordered stock
type OverflowSummary struct {
	// FlaggedDeliveries is the number of events carrying at least one overflow flag
	FlaggedDeliveries int `json:"flagged_deliveries" example:"1"`
	// ExcessPizzas is the total excess across all flags
	ExcessPizzas int `json:"excess_pizzas" example:"2"`
}
