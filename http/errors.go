package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"fincalc/calc"
	"fincalc/repository"
)

// errorResponse is the JSON error body. Code lets the UI distinguish a
// payment that can never amortize (suggest raising the payment or extending
// the term) from plain bad input.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal"

	switch {
	case errors.Is(err, calc.ErrInvalidPayment):
		status = http.StatusUnprocessableEntity
		code = "invalid_payment"
	case errors.Is(err, calc.ErrInvalidInput):
		status = http.StatusBadRequest
		code = "invalid_input"
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error(), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
