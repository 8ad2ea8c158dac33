package handler

// Response helpers shared by every handler. Two error shapes exist:
//
//   {"error": "not_found", "message": "post not found"}        — single errors
//   {"errors": [{"field": "title", "message": "..."}, ...]}    — field validation
//
// The first is produced by writeError from domain errors; the second by
// writeFieldErrors from the validation layer's collect-all output.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/blog-api/internal/apperror"
	"github.com/sakif/blog-api/internal/validate"
)

// ErrorResponse is the standard single-error format.
type ErrorResponse struct {
	Error   string `json:"error"`   // Machine-readable error type (e.g. "not_found")
	Message string `json:"message"` // Human-readable description
}

// FieldErrorsResponse is the validation-failure format. The list preserves
// rule declaration order.
type FieldErrorsResponse struct {
	Errors []validate.FieldError `json:"errors"`
}

// writeJSON sends a JSON response. Headers and status must be set before
// the body — once Encode writes, the headers are on the wire.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent — logging is all that's left.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeFieldErrors sends the full ordered list of violated field rules.
// The status is a parameter because /login reports missing credentials as
// 401 while every other endpoint uses 400.
func writeFieldErrors(w http.ResponseWriter, status int, errs []validate.FieldError) {
	writeJSON(w, status, FieldErrorsResponse{Errors: errs})
}

// writeError maps a domain error to its HTTP status and sends it.
//
// The service layer returns apperror values; this is the only place they
// meet status codes. Anything unrecognized is a 500 with an opaque body —
// raw store errors never reach the client.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		errorType := "internal_error"

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
			errorType = "validation_error"
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized
			errorType = "unauthorized"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
			errorType = "not_found"
		}

		writeJSON(w, status, ErrorResponse{
			Error:   errorType,
			Message: appErr.Message,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
