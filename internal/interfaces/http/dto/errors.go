package dto

import (
	"net/http"
	"strings"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes. Codes
// not listed fall through to the INVALID_ prefix rule, then to 500.
var errorCodeHTTPStatus = map[string]int{
	// Authentication
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,

	// Input
	"VALIDATION_ERROR": http.StatusBadRequest,
	"INVALID_INPUT":    http.StatusBadRequest,
	"NEGATIVE_BALANCE": http.StatusBadRequest,
	"NOT_A_MENTOR":     http.StatusBadRequest,

	// Resources
	"NOT_FOUND":            http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"EMAIL_TAKEN":          http.StatusConflict,
	"SKILL_EXISTS":         http.StatusConflict,
	"SKILL_ALREADY_LINKED": http.StatusConflict,
	"REVIEW_EXISTS":        http.StatusConflict,

	// Concurrency and state
	"CONCURRENCY_CONFLICT":  http.StatusConflict,
	"OPTIMISTIC_LOCK_ERROR": http.StatusConflict,
	"INVALID_STATE":         http.StatusConflict,

	// Business rules
	"INSUFFICIENT_BALANCE": http.StatusUnprocessableEntity,

	"INTERNAL_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus resolves the HTTP status for a domain error code.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
