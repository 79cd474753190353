package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/localstore/docdb/pkg/domain"
)

// ErrorResponse represents a standard JSON error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// WriteJSONError writes a JSON error response with the given status code and message
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}

	json.NewEncoder(w).Encode(response)
}

// statusForError maps repository errors to HTTP status codes. Corrupt
// stored data is the caller-visible fatal class; everything else is a
// plain internal failure.
func statusForError(err error) int {
	if errors.Is(err, domain.ErrCorruptData) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
