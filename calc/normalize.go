package calc

import (
	"math"

	"fincalc/domain"
)

const (
	weeksPerYear   = 52
	biweeksPerYear = 26

	// AcceleratedBiweeklyUplift approximates the extra effective payment from
	// paying half the monthly amount every two weeks: 26 half-payments a year
	// is roughly 13 monthly payments instead of 12. A fixed multiplier, never
	// derived from the rate.
	AcceleratedBiweeklyUplift = 1.08

	// DefaultAmortizationYears is the assumed term when estimating the
	// minimum payment of a debt whose own term is unknown. A convention, but
	// one every downstream ratio depends on.
	DefaultAmortizationYears = 25

	// CreditCardMinimumRate and CreditCardMinimumFloor model the typical
	// credit-card minimum payment: 3% of the balance, never below 10.
	CreditCardMinimumRate  = 0.03
	CreditCardMinimumFloor = 10.0

	// CreditLinePrincipalRate is the principal component of a line-of-credit
	// minimum payment: interest plus 1% of the balance.
	CreditLinePrincipalRate = 0.01
)

// NormalizeToMonthly converts a payment stated at any supported cadence into
// its monthly-equivalent value, so obligations of mixed cadences can be
// aggregated. Unknown cadences are treated as monthly.
func NormalizeToMonthly(payment float64, frequency domain.PaymentFrequency) float64 {
	switch frequency {
	case domain.FrequencyWeekly:
		return payment * weeksPerYear / monthsPerYear
	case domain.FrequencyBiweekly:
		return payment * biweeksPerYear / monthsPerYear
	case domain.FrequencyAcceleratedBiweekly:
		return payment * biweeksPerYear / monthsPerYear * AcceleratedBiweeklyUplift
	default:
		return payment
	}
}

// EstimateMinimumPayment returns a monthly minimum payment for a debt that
// did not come with one, based on its type:
//
//   - interest-only: one month of interest on the balance
//   - credit card: 3% of balance, floor of 10
//   - line of credit / HELOC: one month of interest plus 1% of balance
//   - anything else: annuity payment over DefaultAmortizationYears
func EstimateMinimumPayment(debt domain.DebtObligation) float64 {
	monthlyInterest := debt.Balance * (debt.InterestRate / 100) / monthsPerYear

	if debt.IsInterestOnly {
		return monthlyInterest
	}

	switch debt.Type {
	case domain.DebtCreditCard:
		return math.Max(debt.Balance*CreditCardMinimumRate, CreditCardMinimumFloor)
	case domain.DebtLineOfCredit, domain.DebtHeloc:
		return monthlyInterest + debt.Balance*CreditLinePrincipalRate
	}

	payment, err := ComputeMonthlyPayment(debt.Balance, debt.InterestRate, DefaultAmortizationYears)
	if err != nil {
		return 0
	}
	return payment
}

// MonthlyObligation resolves a debt to its monthly-equivalent payment, using
// the supplied minimum payment when present and estimating one otherwise.
func MonthlyObligation(debt domain.DebtObligation) float64 {
	payment := debt.MinimumPayment
	if payment == 0 {
		payment = EstimateMinimumPayment(debt)
	}
	return NormalizeToMonthly(payment, debt.PaymentFrequency)
}
