package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"fincalc/domain"
	"fincalc/metrics"
	"fincalc/service"
)

type DebtPayoffHandler struct {
	service *service.DebtPayoffService
	logger  *zap.Logger
}

func NewDebtPayoffHandler(service *service.DebtPayoffService, logger *zap.Logger) *DebtPayoffHandler {
	return &DebtPayoffHandler{service: service, logger: logger}
}

func (h *DebtPayoffHandler) PayoffPlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.PayoffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	projection, err := h.service.Project(r.Context(), req)
	if err != nil {
		metrics.CalculationsTotal.WithLabelValues("payoff", "error").Inc()
		writeError(w, err)
		return
	}

	metrics.CalculationsTotal.WithLabelValues("payoff", "ok").Inc()
	h.logger.Debug("payoff projected",
		zap.Int("debts", len(req.Debts)),
		zap.Int("months", projection.Months),
	)
	writeJSON(w, http.StatusOK, projection)
}
