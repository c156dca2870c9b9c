// Package respond writes JSON bodies and maps domain errors to HTTP statuses.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/waserda/kasir/internal/apperr"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// JSON writes v with status. A nil v writes only the status.
func JSON(w http.ResponseWriter, log *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response", zap.Error(err))
	}
}

// Message writes {"error": msg} with status.
func Message(w http.ResponseWriter, log *zap.Logger, status int, msg string) {
	JSON(w, log, status, errorBody{Error: msg})
}

// Error maps err: validation -> 400, not found -> 404, anything else -> 500 with a
// generic body. Server errors are logged with their details.
func Error(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	var ve *apperr.ValidationError

	switch {
	case errors.As(err, &ve):
		JSON(w, log, http.StatusBadRequest, errorBody{Error: ve.Error(), Field: ve.Field})
	case errors.Is(err, apperr.ErrNotFound):
		Message(w, log, http.StatusNotFound, err.Error())
	default:
		log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		Message(w, log, http.StatusInternalServerError, "internal error")
	}
}

// Decode reads a JSON body into v, rejecting unknown fields.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return apperr.Invalid("body", err.Error())
	}

	return nil
}
