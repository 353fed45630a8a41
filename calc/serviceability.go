package calc

import (
	"fmt"
	"math"

	"fincalc/domain"
)

const (
	// GDSRThreshold and TDSRThreshold are the conventional lending ceilings
	// for the gross and total debt service ratios, in percent.
	GDSRThreshold = 32.0
	TDSRThreshold = 44.0
)

// Evaluate aggregates a new loan payment, housing costs and existing debts
// against income to produce the debt service ratios and the maximum
// affordable loan at the given rate and term.
//
// Zero income is a normal transient state while a form is being filled out:
// both ratios are defined as 0 in that case rather than propagating Inf or
// NaN. AvailableMonthlyIncome may come out negative to signal a shortfall.
func Evaluate(
	terms domain.LoanTerms,
	newLoanMonthlyPayment float64,
	housing domain.HousingCosts,
	existingDebts []domain.DebtObligation,
	income domain.IncomeProfile,
) domain.ServiceabilityResult {
	totalMonthlyIncome := income.TotalMonthly()

	monthlyHousing := newLoanMonthlyPayment +
		housing.PropertyTax/monthsPerYear +
		housing.HeatingCosts +
		housing.CondoFees

	monthlyDebt := 0.0
	for _, debt := range existingDebts {
		monthlyDebt += MonthlyObligation(debt)
	}

	totalObligations := monthlyHousing + monthlyDebt

	gdsr, tdsr := 0.0, 0.0
	if totalMonthlyIncome > 0 {
		gdsr = monthlyHousing / totalMonthlyIncome * 100
		tdsr = totalObligations / totalMonthlyIncome * 100
	}

	maxMonthlyPayment := totalMonthlyIncome*(TDSRThreshold/100) - monthlyDebt
	maxLoan := MaxLoanAmount(maxMonthlyPayment, terms.AnnualRate, terms.TermYears)

	return domain.ServiceabilityResult{
		GrossDebtServiceRatio:   gdsr,
		TotalDebtServiceRatio:   tdsr,
		MonthlyHousingExpenses:  monthlyHousing,
		MonthlyDebtPayments:     monthlyDebt,
		TotalMonthlyObligations: totalObligations,
		AvailableMonthlyIncome:  totalMonthlyIncome - totalObligations,
		MaxAffordableLoan:       maxLoan,
	}
}

// MaxLoanAmount inverts the annuity formula: the principal that a given
// monthly payment fully amortizes at the given rate and term. Non-positive
// payment headroom means no room for new debt, so 0, never a negative
// principal.
func MaxLoanAmount(maxMonthlyPayment, annualRate float64, termYears int) float64 {
	if maxMonthlyPayment <= 0 || termYears <= 0 {
		return 0
	}

	n := float64(termYears * monthsPerYear)
	monthlyRate := annualRate / 100 / monthsPerYear

	if monthlyRate == 0 {
		return maxMonthlyPayment * n
	}

	factor := math.Pow(1+monthlyRate, n)
	return maxMonthlyPayment * (factor - 1) / (monthlyRate * factor)
}

// AssessApproval applies the documented lending policy to a serviceability
// result: approval is likely when GDSR is at most 32% and TDSR at most 44%.
// Each breached ceiling is named so the caller can tell the user exactly
// which ratio to bring down.
func AssessApproval(result domain.ServiceabilityResult) domain.ApprovalAssessment {
	var reasons []string
	if result.GrossDebtServiceRatio > GDSRThreshold {
		reasons = append(reasons, fmt.Sprintf("Gross Debt Service Ratio exceeds %.0f%%", GDSRThreshold))
	}
	if result.TotalDebtServiceRatio > TDSRThreshold {
		reasons = append(reasons, fmt.Sprintf("Total Debt Service Ratio exceeds %.0f%%", TDSRThreshold))
	}

	return domain.ApprovalAssessment{
		Likely:  len(reasons) == 0,
		Reasons: reasons,
	}
}
