package http

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"fincalc/repository"
)

// CalculationHandler serves the saved-calculation history.
type CalculationHandler struct {
	repo   repository.CalculationRepository
	logger *zap.Logger
}

func NewCalculationHandler(repo repository.CalculationRepository, logger *zap.Logger) *CalculationHandler {
	return &CalculationHandler{repo: repo, logger: logger}
}

// List handles GET /calculations.
func (h *CalculationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, err := h.repo.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// ByID handles GET and DELETE on /calculations/{id}.
func (h *CalculationHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/calculations/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "invalid calculation id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		record, err := h.repo.Get(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, record)

	case http.MethodDelete:
		if err := h.repo.Delete(id); err != nil {
			writeError(w, err)
			return
		}
		h.logger.Debug("calculation deleted", zap.String("id", id))
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
