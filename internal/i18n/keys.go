// Package i18n provides internationalization support for the pizzeria stock service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyValidation indicates a rejected mutating operation.
	ErrKeyValidation = "error.validation"
	// ErrKeyBackupMalformed indicates an unparseable backup document.
	ErrKeyBackupMalformed = "error.backup.malformed"
	// ErrKeyBackupSchema indicates a backup document without recognized collections.
	ErrKeyBackupSchema = "error.backup.schema"
	// ErrKeyStoreUnavailable indicates the flat-file store could not be read or written.
	ErrKeyStoreUnavailable = "error.store_unavailable"
)

// Warning message translation keys.
const (
	// WarnKeyOverflow indicates a delivery was recorded beyond the ordered stock.
	WarnKeyOverflow = "warning.overflow"
)
