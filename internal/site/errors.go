package site

import (
	"errors"
	"net/http"
)

var (
	ErrMissingField = errors.New("missing form field")
	ErrFormTooLarge = errors.New("form body too large")
	ErrInvalidForm  = errors.New("invalid form body")
)

// MapHTTPStatus maps submission errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrFormTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrMissingField) || errors.Is(err, ErrInvalidForm) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
