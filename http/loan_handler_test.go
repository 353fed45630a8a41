package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fincalc/domain"
	"fincalc/repository"
	"fincalc/service"
)

func newLoanHandler() *LoanHandler {
	repo := repository.NewMemoryCalculationRepository()
	svc := service.NewLoanService(repo, zap.NewNop())
	return NewLoanHandler(svc, zap.NewNop())
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestCalculateHandler_OK(t *testing.T) {
	handler := newLoanHandler()

	w := postJSON(t, handler.Calculate, "/loan/calculate", domain.LoanRequest{
		Amount:        300000,
		AnnualRate:    5,
		TermYears:     25,
		MonthlyIncome: 8000,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var result domain.LoanCalculation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.InDelta(t, 1753.77, result.MonthlyPayment, 0.01)
	assert.Len(t, result.Schedule, 300)
	assert.True(t, result.Approval.Likely)
}

func TestCalculateHandler_MethodNotAllowed(t *testing.T) {
	handler := newLoanHandler()

	req := httptest.NewRequest(http.MethodGet, "/loan/calculate", nil)
	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCalculateHandler_BadBody(t *testing.T) {
	handler := newLoanHandler()

	req := httptest.NewRequest(http.MethodPost, "/loan/calculate", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateHandler_InvalidInputCode(t *testing.T) {
	handler := newLoanHandler()

	w := postJSON(t, handler.Calculate, "/loan/calculate", domain.LoanRequest{
		Amount:    -5,
		TermYears: 25,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_input", resp.Code)
}

func TestAffordabilityHandler_OK(t *testing.T) {
	handler := newLoanHandler()

	w := postJSON(t, handler.Affordability, "/loan/affordability", domain.AffordabilityRequest{
		MonthlyPayment: 1600,
		AnnualRate:     5,
		TermYears:      25,
		MonthlyIncome:  5000,
		ExistingDebts: []domain.DebtObligation{
			{MinimumPayment: 200, PaymentFrequency: domain.FrequencyMonthly},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var result domain.AffordabilityResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.InDelta(t, 32.0, result.Serviceability.GrossDebtServiceRatio, 1e-9)
	assert.InDelta(t, 36.0, result.Serviceability.TotalDebtServiceRatio, 1e-9)
	assert.True(t, result.Approval.Likely)
}

func TestScheduleHandler_OK(t *testing.T) {
	handler := newLoanHandler()

	w := postJSON(t, handler.Schedule, "/loan/amortization-schedule", domain.LoanRequest{
		Amount:     120000,
		AnnualRate: 6,
		TermYears:  10,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var schedule []domain.AmortizationPeriod
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schedule))
	assert.Len(t, schedule, 120)
}
