package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"fincalc/domain"
	"fincalc/metrics"
	"fincalc/service"
)

type LoanHandler struct {
	service *service.LoanService
	logger  *zap.Logger
}

func NewLoanHandler(service *service.LoanService, logger *zap.Logger) *LoanHandler {
	return &LoanHandler{service: service, logger: logger}
}

func (h *LoanHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Calculate(req)
	if err != nil {
		metrics.CalculationsTotal.WithLabelValues("loan", "error").Inc()
		writeError(w, err)
		return
	}

	metrics.CalculationsTotal.WithLabelValues("loan", "ok").Inc()
	h.logger.Debug("loan calculated",
		zap.Float64("amount", req.Amount),
		zap.Int("termYears", req.TermYears),
	)
	writeJSON(w, http.StatusOK, result)
}

func (h *LoanHandler) Affordability(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.AffordabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Affordability(req)
	if err != nil {
		metrics.CalculationsTotal.WithLabelValues("affordability", "error").Inc()
		writeError(w, err)
		return
	}

	metrics.CalculationsTotal.WithLabelValues("affordability", "ok").Inc()
	writeJSON(w, http.StatusOK, result)
}

func (h *LoanHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	schedule, err := h.service.Schedule(req)
	if err != nil {
		metrics.CalculationsTotal.WithLabelValues("schedule", "error").Inc()
		writeError(w, err)
		return
	}

	metrics.CalculationsTotal.WithLabelValues("schedule", "ok").Inc()
	writeJSON(w, http.StatusOK, schedule)
}
