package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "INVALID_TOKEN"
	ErrCodeTokenRevoked = "TOKEN_REVOKED"
)

// Resource error codes
const (
	ErrCodeNotFound = "NOT_FOUND"
	ErrCodeConflict = "CONFLICT"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall through to 422 for business rule errors.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeTokenRevoked: http.StatusUnauthorized,

	ErrCodeNotFound: http.StatusNotFound,
	ErrCodeConflict: http.StatusConflict,

	// Auth flows
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_DISABLED":    http.StatusForbidden,
	"STORE_INACTIVE":      http.StatusForbidden,
	"CANNOT_REMOVE_OWNER": http.StatusForbidden,

	// Uniqueness conflicts
	"EMAIL_TAKEN": http.StatusConflict,
	"SLUG_TAKEN":  http.StatusConflict,

	// Input validation raised by domain constructors
	"INVALID_EMAIL":          http.StatusBadRequest,
	"INVALID_NAME":           http.StatusBadRequest,
	"INVALID_SLUG":           http.StatusBadRequest,
	"INVALID_PRICE":          http.StatusBadRequest,
	"INVALID_QUANTITY":       http.StatusBadRequest,
	"INVALID_AMOUNT":         http.StatusBadRequest,
	"INVALID_ADDRESS":        http.StatusBadRequest,
	"INVALID_PAYMENT_METHOD": http.StatusBadRequest,
	"INVALID_SECTION_TYPE":   http.StatusBadRequest,
	"WEAK_PASSWORD":          http.StatusBadRequest,

	// Business rules
	"EMPTY_CART":                http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":        http.StatusUnprocessableEntity,
	"PRODUCT_UNAVAILABLE":       http.StatusUnprocessableEntity,
	"ORDER_NOT_PAYABLE":         http.StatusUnprocessableEntity,
	"ORDER_ALREADY_PAID":        http.StatusUnprocessableEntity,
	"PAYMENT_NOT_PENDING":       http.StatusUnprocessableEntity,
	"PAYMENT_NOT_CONFIRMED":     http.StatusUnprocessableEntity,
	"INVALID_STATUS_TRANSITION": http.StatusUnprocessableEntity,
	"CATEGORY_IN_USE":           http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status for a domain error code.
// Unknown codes map to 422 so new business rules degrade sanely.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
