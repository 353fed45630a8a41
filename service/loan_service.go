package service

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"fincalc/calc"
	"fincalc/domain"
	"fincalc/repository"
)

// roundTo2Decimals rounds a monetary value to cents for presentation.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// LoanService runs full loan calculations: payment, amortization schedule,
// serviceability ratios and the approval verdict, persisting each result to
// the calculation history.
type LoanService struct {
	repo   repository.CalculationRepository
	logger *zap.Logger
}

// NewLoanService creates a LoanService backed by the given repository.
func NewLoanService(repo repository.CalculationRepository, logger *zap.Logger) *LoanService {
	return &LoanService{repo: repo, logger: logger}
}

// Calculate validates the request and produces the full loan calculation.
func (s *LoanService) Calculate(req domain.LoanRequest) (domain.LoanCalculation, error) {
	if err := validateLoanRequest(req); err != nil {
		return domain.LoanCalculation{}, err
	}

	principal := req.Principal()

	monthlyPayment, err := calc.ComputeMonthlyPayment(principal, req.AnnualRate, req.TermYears)
	if err != nil {
		return domain.LoanCalculation{}, err
	}

	schedule, err := calc.BuildAmortizationSchedule(principal, req.AnnualRate, req.TermYears)
	if err != nil {
		return domain.LoanCalculation{}, err
	}

	n := float64(req.TermYears * 12)
	totalPayment := monthlyPayment * n
	totalInterest := calc.TotalInterest(schedule)

	serviceability := calc.Evaluate(
		domain.LoanTerms{
			Principal:        principal,
			AnnualRate:       req.AnnualRate,
			TermYears:        req.TermYears,
			PaymentFrequency: req.PaymentFrequency,
		},
		monthlyPayment,
		domain.HousingCosts{
			PropertyTax:  req.PropertyTax,
			HeatingCosts: req.HeatingCosts,
			CondoFees:    req.CondoFees,
		},
		req.ExistingDebts,
		domain.IncomeProfile{
			MonthlyIncome:     req.MonthlyIncome,
			OtherAnnualIncome: req.OtherAnnualIncome,
		},
	)

	loanToValue := 0.0
	if req.PropertyValue > 0 {
		loanToValue = principal / req.PropertyValue * 100
	}

	result := domain.LoanCalculation{
		MonthlyPayment:   roundTo2Decimals(monthlyPayment),
		BiweeklyPayment:  roundTo2Decimals(calc.ComputeBiweeklyPayment(monthlyPayment)),
		TotalPayment:     roundTo2Decimals(totalPayment),
		TotalInterest:    roundTo2Decimals(totalInterest),
		Schedule:         schedule,
		Serviceability:   serviceability,
		Approval:         calc.AssessApproval(serviceability),
		LoanToValueRatio: roundTo2Decimals(loanToValue),
		BreakEvenMonths:  int(math.Ceil(principal / monthlyPayment)),
	}

	// History is best effort: a failed save must not fail the calculation.
	if _, err := s.repo.Save(repository.CalculationRecord{Request: req, Result: result}); err != nil {
		s.logger.Warn("failed to save loan calculation", zap.Error(err))
	}

	return result, nil
}

// Affordability evaluates a hypothetical payment against income and existing
// debts without producing a schedule.
func (s *LoanService) Affordability(req domain.AffordabilityRequest) (domain.AffordabilityResult, error) {
	if req.MonthlyPayment < 0 {
		return domain.AffordabilityResult{}, fmt.Errorf("%w: monthly payment must not be negative", calc.ErrInvalidInput)
	}
	if req.TermYears <= 0 || req.TermYears > calc.MaxTermYears {
		return domain.AffordabilityResult{}, fmt.Errorf("%w: term must be between 1 and %d years", calc.ErrInvalidInput, calc.MaxTermYears)
	}
	if req.AnnualRate < 0 || req.AnnualRate > MaxInterestRate {
		return domain.AffordabilityResult{}, fmt.Errorf("%w: rate must be between 0 and %.0f", calc.ErrInvalidInput, MaxInterestRate)
	}
	if req.MonthlyIncome < 0 || req.OtherAnnualIncome < 0 {
		return domain.AffordabilityResult{}, fmt.Errorf("%w: income must not be negative", calc.ErrInvalidInput)
	}

	serviceability := calc.Evaluate(
		domain.LoanTerms{AnnualRate: req.AnnualRate, TermYears: req.TermYears},
		req.MonthlyPayment,
		domain.HousingCosts{
			PropertyTax:  req.PropertyTax,
			HeatingCosts: req.HeatingCosts,
			CondoFees:    req.CondoFees,
		},
		req.ExistingDebts,
		domain.IncomeProfile{
			MonthlyIncome:     req.MonthlyIncome,
			OtherAnnualIncome: req.OtherAnnualIncome,
		},
	)

	return domain.AffordabilityResult{
		Serviceability: serviceability,
		Approval:       calc.AssessApproval(serviceability),
	}, nil
}

// Schedule validates the request and returns only the amortization schedule.
func (s *LoanService) Schedule(req domain.LoanRequest) ([]domain.AmortizationPeriod, error) {
	if err := validateLoanRequest(req); err != nil {
		return nil, err
	}
	return calc.BuildAmortizationSchedule(req.Principal(), req.AnnualRate, req.TermYears)
}

func validateLoanRequest(req domain.LoanRequest) error {
	if req.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", calc.ErrInvalidInput)
	}
	if req.Amount > MaxLoanAmount {
		return fmt.Errorf("%w: amount exceeds the maximum of %.2f", calc.ErrInvalidInput, MaxLoanAmount)
	}
	if req.DownPayment < 0 {
		return fmt.Errorf("%w: down payment must not be negative", calc.ErrInvalidInput)
	}
	if req.DownPayment >= req.Amount {
		return fmt.Errorf("%w: down payment must be below the loan amount", calc.ErrInvalidInput)
	}
	if req.AnnualRate < 0 {
		return fmt.Errorf("%w: rate must not be negative", calc.ErrInvalidInput)
	}
	if req.AnnualRate > MaxInterestRate {
		return fmt.Errorf("%w: rate exceeds the maximum of %.2f%%", calc.ErrInvalidInput, MaxInterestRate)
	}
	if req.TermYears <= 0 {
		return fmt.Errorf("%w: term must be positive", calc.ErrInvalidInput)
	}
	if req.TermYears > calc.MaxTermYears {
		return fmt.Errorf("%w: term exceeds %d years", calc.ErrInvalidInput, calc.MaxTermYears)
	}
	if req.PaymentFrequency != "" && !req.PaymentFrequency.Valid() {
		return fmt.Errorf("%w: unknown payment frequency %q", calc.ErrInvalidInput, req.PaymentFrequency)
	}
	if req.MonthlyIncome < 0 || req.OtherAnnualIncome < 0 {
		return fmt.Errorf("%w: income must not be negative", calc.ErrInvalidInput)
	}
	for _, debt := range req.ExistingDebts {
		if debt.Balance < 0 || debt.MinimumPayment < 0 || debt.InterestRate < 0 {
			return fmt.Errorf("%w: existing debt fields must not be negative", calc.ErrInvalidInput)
		}
		if debt.PaymentFrequency != "" && !debt.PaymentFrequency.Valid() {
			return fmt.Errorf("%w: unknown payment frequency %q", calc.ErrInvalidInput, debt.PaymentFrequency)
		}
	}
	return nil
}
