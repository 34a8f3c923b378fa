package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"amortizer/finance"
	"amortizer/logger"
	"amortizer/service"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondJSON encodes into a buffer first so a failed encode does not leave a
// half-written response behind.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContext(r.Context()).Warn("failed to write response", "error", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, finance.ErrInfeasibleTerms):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidPrincipal),
		errors.Is(err, service.ErrInvalidPayment),
		errors.Is(err, service.ErrInvalidMonths),
		errors.Is(err, service.ErrInvalidRate):
		status = http.StatusBadRequest
	}

	log := logger.FromContext(r.Context())
	if status == http.StatusInternalServerError {
		log.Error("calculation failed", "error", err)
		respondJSON(w, r, status, errorResponse{Error: "internal server error"})
		return
	}
	log.Info("calculation rejected", "error", err)
	respondJSON(w, r, status, errorResponse{Error: err.Error()})
}
