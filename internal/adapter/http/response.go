package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adpulse/internal/core/port"
)

// errorResponse is the error envelope of every API error.
type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// fail maps usecase errors to a status. Unexpected errors are logged and
// reported without detail.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, port.ErrUnknownCampaign):
		h.writeError(w, http.StatusNotFound, "unknown campaign")
	case errors.Is(err, port.ErrMissingFields):
		h.writeError(w, http.StatusBadRequest, "missing required fields")
	case errors.Is(err, port.ErrInvalidSignature):
		h.writeError(w, http.StatusUnauthorized, "invalid signature")
	case errors.Is(err, port.ErrDuplicateDelivery):
		h.writeError(w, http.StatusConflict, "duplicate delivery")
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decode reads a JSON body into dst and writes a 400 on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}
