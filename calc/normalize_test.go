package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fincalc/domain"
)

func TestNormalizeToMonthly(t *testing.T) {
	tests := []struct {
		name      string
		payment   float64
		frequency domain.PaymentFrequency
		expected  float64
	}{
		{name: "monthly is identity", payment: 350, frequency: domain.FrequencyMonthly, expected: 350},
		{name: "weekly", payment: 120, frequency: domain.FrequencyWeekly, expected: 120 * 52.0 / 12.0},
		{name: "biweekly", payment: 200, frequency: domain.FrequencyBiweekly, expected: 200 * 26.0 / 12.0},
		{
			name:      "accelerated biweekly carries the uplift",
			payment:   200,
			frequency: domain.FrequencyAcceleratedBiweekly,
			expected:  200 * 26.0 / 12.0 * AcceleratedBiweeklyUplift,
		},
		{name: "empty frequency falls back to monthly", payment: 75, frequency: "", expected: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeToMonthly(tt.payment, tt.frequency))
		})
	}
}

func TestEstimateMinimumPayment(t *testing.T) {
	tests := []struct {
		name     string
		debt     domain.DebtObligation
		expected float64
	}{
		{
			name:     "credit card is 3 percent of balance",
			debt:     domain.DebtObligation{Type: domain.DebtCreditCard, Balance: 5000, InterestRate: 20},
			expected: 150,
		},
		{
			name:     "credit card floor of 10",
			debt:     domain.DebtObligation{Type: domain.DebtCreditCard, Balance: 100, InterestRate: 20},
			expected: 10,
		},
		{
			name:     "interest only",
			debt:     domain.DebtObligation{Type: domain.DebtMortgage, Balance: 120000, InterestRate: 6, IsInterestOnly: true},
			expected: 600,
		},
		{
			name:     "line of credit is interest plus one percent",
			debt:     domain.DebtObligation{Type: domain.DebtLineOfCredit, Balance: 12000, InterestRate: 8},
			expected: 12000*0.08/12 + 120,
		},
		{
			name:     "heloc uses the line of credit policy",
			debt:     domain.DebtObligation{Type: domain.DebtHeloc, Balance: 50000, InterestRate: 7},
			expected: 50000*0.07/12 + 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EstimateMinimumPayment(tt.debt), 1e-9)
		})
	}
}

func TestEstimateMinimumPayment_TermLoanDefault(t *testing.T) {
	debt := domain.DebtObligation{Type: domain.DebtOther, Balance: 20000, InterestRate: 6}

	expected, err := ComputeMonthlyPayment(20000, 6, DefaultAmortizationYears)
	assert.NoError(t, err)
	assert.Equal(t, expected, EstimateMinimumPayment(debt))
}

func TestMonthlyObligation(t *testing.T) {
	t.Run("uses supplied minimum payment", func(t *testing.T) {
		debt := domain.DebtObligation{
			Type:             domain.DebtCreditCard,
			Balance:          5000,
			InterestRate:     20,
			MinimumPayment:   200,
			PaymentFrequency: domain.FrequencyBiweekly,
		}
		assert.Equal(t, 200*26.0/12.0, MonthlyObligation(debt))
	})

	t.Run("estimates when minimum payment is absent", func(t *testing.T) {
		debt := domain.DebtObligation{
			Type:             domain.DebtCreditCard,
			Balance:          5000,
			InterestRate:     20,
			PaymentFrequency: domain.FrequencyMonthly,
		}
		assert.Equal(t, 150.0, MonthlyObligation(debt))
	})
}
