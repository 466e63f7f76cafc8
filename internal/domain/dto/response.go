package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/pizzeria-stock/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"name: recipient name must not be blank"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// DeleteDeliveryResponse reports the outcome of a delete-by-id call.
// @Description Delete outcome; deleted is false when the id was not found
type DeleteDeliveryResponse struct {
	// ID of the delivery the delete targeted
	ID int `json:"id" example:"3"`
	// Deleted is true when an event was actually removed
	Deleted bool `json:"deleted" example:"true"`
} // @name DeleteDeliveryResponse

// TotalsResponse is the aggregate report: overall totals plus the
// over-delivery summary.
// @Description Aggregate totals and overflow alert summary
type TotalsResponse struct {
	Totals model.Totals `json:"totals"`
	// Overflow summarizes deliveries recorded beyond the ordered stock
	Overflow model.OverflowSummary `json:"overflow"`
} // @name TotalsResponse

// ImportResponse reports a successful snapshot import.
// @Description Result of a backup import
type ImportResponse struct {
	// Deliveries is the number of delivery events imported
	Deliveries int `json:"deliveries" example:"12"`
	// OrderRows is the number of flavors with configured order cells
	OrderRows int `json:"order_rows" example:"4"`
} // @name ImportResponse
