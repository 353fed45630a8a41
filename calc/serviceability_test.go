package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"fincalc/domain"
)

func TestEvaluate(t *testing.T) {
	income := domain.IncomeProfile{MonthlyIncome: 5000}
	debts := []domain.DebtObligation{
		{Type: domain.DebtOther, MinimumPayment: 200, PaymentFrequency: domain.FrequencyMonthly},
	}

	result := Evaluate(domain.LoanTerms{AnnualRate: 5, TermYears: 25}, 1600, domain.HousingCosts{}, debts, income)

	assert.InDelta(t, 32.0, result.GrossDebtServiceRatio, 1e-9)
	assert.InDelta(t, 36.0, result.TotalDebtServiceRatio, 1e-9)
	assert.InDelta(t, 1600, result.MonthlyHousingExpenses, 1e-9)
	assert.InDelta(t, 200, result.MonthlyDebtPayments, 1e-9)
	assert.InDelta(t, 1800, result.TotalMonthlyObligations, 1e-9)
	assert.InDelta(t, 3200, result.AvailableMonthlyIncome, 1e-9)

	// 44% of income minus existing debt payments, inverted through the
	// annuity formula at 5% over 25 years.
	assert.InDelta(t, MaxLoanAmount(5000*0.44-200, 5, 25), result.MaxAffordableLoan, 1e-9)

	approval := AssessApproval(result)
	assert.True(t, approval.Likely)
	assert.Empty(t, approval.Reasons)
}

func TestEvaluate_ZeroIncome(t *testing.T) {
	result := Evaluate(domain.LoanTerms{AnnualRate: 5, TermYears: 25}, 1500, domain.HousingCosts{}, nil, domain.IncomeProfile{})

	assert.Zero(t, result.GrossDebtServiceRatio)
	assert.Zero(t, result.TotalDebtServiceRatio)
	assert.False(t, math.IsNaN(result.GrossDebtServiceRatio))
	assert.False(t, math.IsInf(result.TotalDebtServiceRatio, 0))
	assert.Zero(t, result.MaxAffordableLoan)
	assert.Equal(t, -1500.0, result.AvailableMonthlyIncome)
}

func TestEvaluate_HousingCosts(t *testing.T) {
	housing := domain.HousingCosts{
		PropertyTax:  3600, // annual
		HeatingCosts: 150,
		CondoFees:    400,
	}
	income := domain.IncomeProfile{MonthlyIncome: 8000, OtherAnnualIncome: 12000}

	result := Evaluate(domain.LoanTerms{AnnualRate: 4, TermYears: 30}, 2000, housing, nil, income)

	assert.InDelta(t, 2000+300+150+400, result.MonthlyHousingExpenses, 1e-9)
	assert.InDelta(t, 9000.0, income.TotalMonthly(), 1e-9)
	assert.InDelta(t, result.MonthlyHousingExpenses/9000*100, result.GrossDebtServiceRatio, 1e-9)
}

func TestEvaluate_Deterministic(t *testing.T) {
	income := domain.IncomeProfile{MonthlyIncome: 6200, OtherAnnualIncome: 4800}
	debts := []domain.DebtObligation{
		{Type: domain.DebtCreditCard, Balance: 5000, InterestRate: 20, PaymentFrequency: domain.FrequencyMonthly},
		{Type: domain.DebtLineOfCredit, Balance: 15000, InterestRate: 8, PaymentFrequency: domain.FrequencyWeekly},
	}
	housing := domain.HousingCosts{PropertyTax: 4200, HeatingCosts: 120}

	terms := domain.LoanTerms{AnnualRate: 5.25, TermYears: 25}
	first := Evaluate(terms, 1850, housing, debts, income)
	second := Evaluate(terms, 1850, housing, debts, income)

	assert.Equal(t, first, second)
}

func TestMaxLoanAmount(t *testing.T) {
	t.Run("round trips through the payment formula", func(t *testing.T) {
		payment, err := ComputeMonthlyPayment(300000, 5, 25)
		assert.NoError(t, err)
		assert.InDelta(t, 300000, MaxLoanAmount(payment, 5, 25), 0.01)
	})

	t.Run("zero rate multiplies out the term", func(t *testing.T) {
		assert.Equal(t, 1000.0*300, MaxLoanAmount(1000, 0, 25))
	})

	t.Run("no headroom means zero, not negative", func(t *testing.T) {
		assert.Zero(t, MaxLoanAmount(0, 5, 25))
		assert.Zero(t, MaxLoanAmount(-250, 5, 25))
	})
}

func TestAssessApproval_Reasons(t *testing.T) {
	tests := []struct {
		name    string
		result  domain.ServiceabilityResult
		likely  bool
		reasons []string
	}{
		{
			name:   "both ratios at the ceiling",
			result: domain.ServiceabilityResult{GrossDebtServiceRatio: 32, TotalDebtServiceRatio: 44},
			likely: true,
		},
		{
			name:    "gdsr exceeded",
			result:  domain.ServiceabilityResult{GrossDebtServiceRatio: 35, TotalDebtServiceRatio: 40},
			reasons: []string{"Gross Debt Service Ratio exceeds 32%"},
		},
		{
			name:    "tdsr exceeded",
			result:  domain.ServiceabilityResult{GrossDebtServiceRatio: 30, TotalDebtServiceRatio: 46},
			reasons: []string{"Total Debt Service Ratio exceeds 44%"},
		},
		{
			name:   "both exceeded",
			result: domain.ServiceabilityResult{GrossDebtServiceRatio: 40, TotalDebtServiceRatio: 50},
			reasons: []string{
				"Gross Debt Service Ratio exceeds 32%",
				"Total Debt Service Ratio exceeds 44%",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approval := AssessApproval(tt.result)
			assert.Equal(t, tt.likely, approval.Likely)
			assert.Equal(t, tt.reasons, approval.Reasons)
		})
	}
}
