// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model. Shape validation is
// done with gin's binding tags; business validation (catalog membership,
// blank names, zero deliveries) lives in the ledger service.
package dto

// RecordDeliveryRequest is the JSON body for recording a delivery.
//
// @Description Request to record a delivery of pizzas to a recipient
// @Example {"day": "Segunda-Feira", "name": "Ana", "items": {"Calabresa": 4}}
type RecordDeliveryRequest struct {
	// Day is the weekday the delivery belongs to. Must be in the day catalog.
	Day string `json:"day" binding:"required" example:"Segunda-Feira"`
	// Name is the recipient; must be non-blank after trimming.
	Name string `json:"name" binding:"required" example:"Ana"`
	// Note is optional free text.
	Note string `json:"note" example:"entrega da tarde"`
	// Items maps flavor to quantity. At least one entry must be positive;
	// zero entries are dropped, negative ones rejected.
	Items map[string]int `json:"items" binding:"required"`
} // @name RecordDeliveryRequest

// SetOrderedRequest is the JSON body for configuring one order-table cell.
//
// @Description Request to set the ordered quantity for a flavor on a day
// @Example {"flavor": "Calabresa", "day": "Segunda-Feira", "quantity": 10}
type SetOrderedRequest struct {
	// Flavor must be in the flavor catalog.
	Flavor string `json:"flavor" binding:"required" example:"Calabresa"`
	// Day must be in the day catalog.
	Day string `json:"day" binding:"required" example:"Segunda-Feira"`
	// Quantity is the number of pizzas ordered; zero is allowed, negative is not.
	Quantity int `json:"quantity" example:"10" minimum:"0"`
} // @name SetOrderedRequest
