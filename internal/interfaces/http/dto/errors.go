package dto

import "net/http"

// Transport-level error codes. Domain errors carry their own codes and are
// mapped to HTTP statuses below.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeValidation is used when request binding or validation fails
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeUnauthorized is used when authentication is required but missing or invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the caller lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
	// ErrCodeRequestTooLarge is used when the request body exceeds the limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// errorCodeHTTPStatus maps error codes, transport and domain alike, to HTTP
// status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeTokenExpired:    http.StatusUnauthorized,
	ErrCodeTokenInvalid:    http.StatusUnauthorized,
	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	// resource lookups
	"NOT_FOUND":         http.StatusNotFound,
	"PRODUCT_NOT_FOUND": http.StatusNotFound,
	"UPLOAD_NOT_FOUND":  http.StatusNotFound,
	"ALREADY_EXISTS":    http.StatusConflict,

	// input problems
	"INVALID_INPUT":        http.StatusBadRequest,
	"VALIDATION_FAILED":    http.StatusBadRequest,
	"INVALID_CONTENT_TYPE": http.StatusBadRequest,
	"INVALID_PRODUCT_NAME": http.StatusBadRequest,
	"INVALID_QUANTITY":     http.StatusBadRequest,
	"INVALID_STATUS":       http.StatusBadRequest,

	// business rules
	"EMPTY_CART":    http.StatusUnprocessableEntity,
	"INVALID_STATE": http.StatusUnprocessableEntity,

	// auth
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,

	// persistence
	"CHECKOUT_FAILED": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
