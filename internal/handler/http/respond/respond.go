// Package respond provides utilities for sending HTTP responses in JSON format.
// It maps domain errors to status codes and masks internal errors so storage
// details never leak to clients.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ech0p1ng/articles-rest/internal/domain/entity"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; can only log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error body {"error": msg} with the given status code.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// DomainError maps a domain error to its HTTP status and writes it.
// Invalid filters map to 400, missing entities to 404, duplicates to 403.
// Anything else is an internal error: logged with sensitive values masked
// and returned as a generic 500.
func DomainError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, entity.ErrInvalidFilter):
		Error(w, http.StatusBadRequest, err)
	case errors.Is(err, entity.ErrNotFound):
		Error(w, http.StatusNotFound, err)
	case errors.Is(err, entity.ErrAlreadyExists):
		Error(w, http.StatusForbidden, err)
	default:
		SafeError(w, http.StatusInternalServerError, err)
	}
}

// SafeError writes an error response without exposing internal details.
// For 5xx codes the real error is logged with credentials masked and the
// client receives a generic message; other codes pass the message through.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	if code >= 500 {
		slog.Default().Error("internal server error",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.String("error", SanitizeError(err)))
		JSON(w, code, map[string]string{"error": "internal server error"})
		return
	}

	JSON(w, code, map[string]string{"error": err.Error()})
}
