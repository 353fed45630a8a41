package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"

	"go.uber.org/zap"

	"fincalc/calc"
	"fincalc/domain"
	"fincalc/repository"
)

// DebtPayoffService projects how long a set of debts takes to pay off at the
// combined minimum payments plus any additional payment. The debts are
// aggregated into a single balance at their balance-weighted average rate and
// simulated month by month.
type DebtPayoffService struct {
	cache  repository.CacheRepository
	logger *zap.Logger
}

// NewDebtPayoffService creates a DebtPayoffService with the given cache.
func NewDebtPayoffService(cache repository.CacheRepository, logger *zap.Logger) *DebtPayoffService {
	return &DebtPayoffService{cache: cache, logger: logger}
}

// Project validates the request and computes the payoff projection,
// consulting the cache first since identical inputs always produce identical
// output.
func (s *DebtPayoffService) Project(ctx context.Context, req domain.PayoffRequest) (domain.PayoffProjection, error) {
	if err := validatePayoffRequest(req); err != nil {
		return domain.PayoffProjection{}, err
	}

	key := payoffCacheKey(req)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var projection domain.PayoffProjection
		if err := json.Unmarshal([]byte(cached), &projection); err == nil {
			return projection, nil
		}
		s.logger.Warn("discarding unreadable cached projection", zap.String("key", key))
	}

	projection, err := s.project(req)
	if err != nil {
		return domain.PayoffProjection{}, err
	}

	if encoded, err := json.Marshal(projection); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
			s.logger.Warn("failed to cache payoff projection", zap.Error(err))
		}
	}

	return projection, nil
}

func (s *DebtPayoffService) project(req domain.PayoffRequest) (domain.PayoffProjection, error) {
	totalDebt := 0.0
	weightedRate := 0.0
	monthlyPayment := req.AdditionalPayment

	for _, debt := range req.Debts {
		totalDebt += debt.Balance
		weightedRate += debt.InterestRate * debt.Balance
		monthlyPayment += calc.MonthlyObligation(debt)
	}
	if totalDebt > 0 {
		weightedRate /= totalDebt
	}

	if monthlyPayment <= 0 {
		return domain.PayoffProjection{}, fmt.Errorf("%w: combined monthly payment must be positive", calc.ErrInvalidInput)
	}

	monthlyRate := weightedRate / 100 / 12

	if monthlyRate == 0 {
		months := int(math.Ceil(totalDebt / monthlyPayment))
		return domain.PayoffProjection{
			Months:               months,
			TotalDebt:            roundTo2Decimals(totalDebt),
			TotalInterest:        0,
			TotalPayment:         roundTo2Decimals(totalDebt),
			MonthlyPayment:       roundTo2Decimals(monthlyPayment),
			WeightedInterestRate: 0,
		}, nil
	}

	if monthlyPayment <= totalDebt*monthlyRate {
		return domain.PayoffProjection{}, fmt.Errorf("%w: payment %.2f, first month interest %.2f",
			calc.ErrInvalidPayment, monthlyPayment, totalDebt*monthlyRate)
	}

	balance := totalDebt
	totalInterest := 0.0
	months := 0

	for balance > BalanceTolerance && months < MaxPayoffMonths {
		interest := balance * monthlyRate
		totalInterest += interest

		principal := math.Min(monthlyPayment-interest, balance)
		balance -= principal
		months++
	}

	return domain.PayoffProjection{
		Months:               months,
		TotalDebt:            roundTo2Decimals(totalDebt),
		TotalInterest:        roundTo2Decimals(totalInterest),
		TotalPayment:         roundTo2Decimals(totalDebt + totalInterest),
		MonthlyPayment:       roundTo2Decimals(monthlyPayment),
		WeightedInterestRate: roundTo2Decimals(weightedRate),
	}, nil
}

func validatePayoffRequest(req domain.PayoffRequest) error {
	if len(req.Debts) == 0 {
		return fmt.Errorf("%w: at least one debt is required", calc.ErrInvalidInput)
	}
	if len(req.Debts) > MaxDebtsPerRequest {
		return fmt.Errorf("%w: at most %d debts per request", calc.ErrInvalidInput, MaxDebtsPerRequest)
	}
	if req.AdditionalPayment < 0 {
		return fmt.Errorf("%w: additional payment must not be negative", calc.ErrInvalidInput)
	}
	for _, debt := range req.Debts {
		if debt.Balance <= 0 {
			return fmt.Errorf("%w: debt balance must be positive", calc.ErrInvalidInput)
		}
		if debt.Balance > MaxDebtAmount {
			return fmt.Errorf("%w: debt balance exceeds the maximum of %.2f", calc.ErrInvalidInput, MaxDebtAmount)
		}
		if debt.InterestRate < 0 || debt.InterestRate > MaxInterestRate {
			return fmt.Errorf("%w: debt rate must be between 0 and %.0f", calc.ErrInvalidInput, MaxInterestRate)
		}
		if debt.MinimumPayment < 0 {
			return fmt.Errorf("%w: minimum payment must not be negative", calc.ErrInvalidInput)
		}
		if debt.PaymentFrequency != "" && !debt.PaymentFrequency.Valid() {
			return fmt.Errorf("%w: unknown payment frequency %q", calc.ErrInvalidInput, debt.PaymentFrequency)
		}
	}
	return nil
}

func payoffCacheKey(req domain.PayoffRequest) string {
	encoded, _ := json.Marshal(req)
	sum := sha256.Sum256(encoded)
	return "payoff:" + hex.EncodeToString(sum[:])
}
