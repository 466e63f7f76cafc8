package model

import "fmt"

// ValidationError reports that input to a mutating operation was rejected.
// It names the failing field so callers can re-prompt the operator.
// Validation failures never mutate ledger state.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrEmptyRecipient is returned when the recipient name is blank after trimming.
	ErrEmptyRecipient = &ValidationError{
		Field:   "name",
		Message: "recipient name must not be blank",
	}

	// ErrEmptyDelivery is returned when no item carries a positive quantity.
	ErrEmptyDelivery = &ValidationError{
		Field:   "items",
		Message: "at least one pizza must be delivered",
	}

	// ErrNegativeQuantity is returned when a quantity is below zero.
	ErrNegativeQuantity = &ValidationError{
		Field:   "quantity",
		Message: "quantity must not be negative",
	}
)

// ErrUnknownFlavor builds a ValidationError for a flavor outside the catalog.
func ErrUnknownFlavor(f Flavor) *ValidationError {
	return &ValidationError{
		Field:   "flavor",
		Message: fmt.Sprintf("%q is not in the flavor catalog", string(f)),
	}
}

// ErrUnknownDay builds a ValidationError for a day outside the catalog.
func ErrUnknownDay(d Day) *ValidationError {
	return &ValidationError{
		Field:   "day",
		Message: fmt.Sprintf("%q is not in the day catalog", string(d)),
	}
}
