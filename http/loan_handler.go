package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"amortizer/logger"
	"amortizer/service"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

func (h *LoanHandler) CalculatePayment(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, h.service.CalculatePayment)
}

func (h *LoanHandler) CalculatePrincipal(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, h.service.CalculatePrincipal)
}

func (h *LoanHandler) CalculateMonths(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, h.service.CalculateMonths)
}

func (h *LoanHandler) CalculateRate(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, h.service.CalculateRate)
}

func (h *LoanHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, h.service.GenerateSchedule)
}

// Recent lists the latest calculations. The optional limit query parameter
// caps the number returned.
func (h *LoanHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	recent, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, recent)
}

func handleCalculation[In, Out any](
	w http.ResponseWriter,
	r *http.Request,
	calculate func(context.Context, In) (Out, error),
) {
	var input In
	if !decodeAndValidate(w, r, &input) {
		return
	}

	result, err := calculate(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

// decodeAndValidate writes the error response itself and reports false when
// the request cannot be used.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, input any) bool {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(input); err != nil {
		log.Info("invalid request body", "error", err)
		respondJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}

	if err := getValidator().Struct(input); err != nil {
		respondJSON(w, r, http.StatusBadRequest, errorResponse{
			Error:  "invalid request",
			Fields: formatValidationError(err),
		})
		return false
	}
	return true
}
