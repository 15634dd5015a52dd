package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/session"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	// Encode before writing the header so an encoding failure can still be a 500
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondResult writes a driver call result. Declined calls are not HTTP
// errors in the usual sense; the status only hints at the reason.
func respondResult(w http.ResponseWriter, res session.Result) {
	respondJSON(w, statusFor(res), res)
}

// statusFor maps a driver result onto an HTTP status code
func statusFor(res session.Result) int {
	if res.Accepted {
		return http.StatusOK
	}
	switch res.Reason {
	case domain.ErrMsgOfferNotFound, domain.ErrMsgQuestNotFound:
		return http.StatusNotFound
	case domain.ErrMsgSlotOutOfRange, domain.ErrMsgInvalidAmount, domain.ErrMsgInvalidPhase,
		domain.ErrMsgUnknownStrain, domain.ErrMsgUnknownSoil, domain.ErrMsgInvalidUpgrade:
		return http.StatusBadRequest
	case domain.ReasonInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusConflict
	}
}
