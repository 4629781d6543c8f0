// Package handlers provides HTTP response utilities.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondText writes a plain text response with the given status code.
func RespondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", ContentTypeText)
	w.WriteHeader(status)
	io.WriteString(w, body)
}

// RespondError logs the error and writes a plain text error response.
// The body is the error message followed by a newline, matching http.Error.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Warn("handler error", "error", err, "status", status)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	RespondText(w, status, err.Error()+"\n")
}
