// Package calc implements the loan amortization and debt serviceability
// engine: pure functions over user-entered loan parameters, with no I/O and no
// shared state. Monetary values are float64; rounding to cents is left to the
// caller.
package calc

import (
	"fmt"
	"math"

	"fincalc/domain"
)

// MaxTermYears caps amortization length so a bad input cannot ask for an
// unbounded schedule.
const MaxTermYears = 50

const monthsPerYear = 12

// ComputeMonthlyPayment returns the fixed monthly payment that fully
// amortizes principal at the given nominal annual rate over termYears.
//
// A zero rate is an explicit straight-line branch, not a limit of the annuity
// formula: the payment is principal divided evenly across all periods.
func ComputeMonthlyPayment(principal, annualRate float64, termYears int) (float64, error) {
	if err := validateTerms(principal, annualRate, termYears); err != nil {
		return 0, err
	}

	n := float64(termYears * monthsPerYear)
	monthlyRate := annualRate / 100 / monthsPerYear

	if monthlyRate == 0 {
		return principal / n, nil
	}

	factor := math.Pow(1+monthlyRate, n)
	return principal * monthlyRate * factor / (factor - 1), nil
}

// ComputeBiweeklyPayment converts a monthly payment into its biweekly display
// equivalent. It is presentation only: schedules always step in monthly
// periods regardless of the cadence the payment is quoted at.
func ComputeBiweeklyPayment(monthlyPayment float64) float64 {
	return monthlyPayment * monthsPerYear / 26
}

// BuildAmortizationSchedule produces the full period-by-period schedule for a
// loan: termYears*12 rows, balance monotonically decreasing and exactly zero
// in the final row.
//
// Returns ErrInvalidPayment when the computed payment cannot cover even the
// first period's interest, which would otherwise yield a schedule whose
// balance never reaches zero.
func BuildAmortizationSchedule(principal, annualRate float64, termYears int) ([]domain.AmortizationPeriod, error) {
	payment, err := ComputeMonthlyPayment(principal, annualRate, termYears)
	if err != nil {
		return nil, err
	}
	return scheduleForPayment(principal, annualRate, termYears, payment)
}

func scheduleForPayment(principal, annualRate float64, termYears int, payment float64) ([]domain.AmortizationPeriod, error) {
	n := termYears * monthsPerYear
	monthlyRate := annualRate / 100 / monthsPerYear

	if monthlyRate > 0 && payment <= principal*monthlyRate {
		return nil, fmt.Errorf("%w: payment %.2f, first period interest %.2f",
			ErrInvalidPayment, payment, principal*monthlyRate)
	}

	schedule := make([]domain.AmortizationPeriod, 0, n)
	remaining := principal

	for period := 1; period <= n; period++ {
		interest := remaining * monthlyRate
		principalPart := payment - interest
		remaining = math.Max(0, remaining-principalPart)

		schedule = append(schedule, domain.AmortizationPeriod{
			Period:           period,
			Payment:          payment,
			Principal:        principalPart,
			Interest:         interest,
			RemainingBalance: remaining,
		})
	}

	return schedule, nil
}

// TotalInterest sums the interest portions of a schedule.
func TotalInterest(schedule []domain.AmortizationPeriod) float64 {
	total := 0.0
	for _, row := range schedule {
		total += row.Interest
	}
	return total
}

func validateTerms(principal, annualRate float64, termYears int) error {
	if principal <= 0 {
		return fmt.Errorf("%w: principal must be positive, got %.2f", ErrInvalidInput, principal)
	}
	if termYears <= 0 {
		return fmt.Errorf("%w: term must be positive, got %d years", ErrInvalidInput, termYears)
	}
	if termYears > MaxTermYears {
		return fmt.Errorf("%w: term exceeds %d years", ErrInvalidInput, MaxTermYears)
	}
	if annualRate < 0 {
		return fmt.Errorf("%w: rate must not be negative, got %.2f", ErrInvalidInput, annualRate)
	}
	return nil
}
