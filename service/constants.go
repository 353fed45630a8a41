package service

const (
	MaxLoanAmount      = 1_000_000_000.0
	MaxInterestRate    = 1000.0 // percent, annual
	MaxDebtAmount      = 100_000_000.0
	MaxDebtsPerRequest = 50

	// MaxPayoffMonths bounds the payoff simulation at 50 years.
	MaxPayoffMonths = 600

	// BalanceTolerance is the residual below which a debt counts as paid.
	BalanceTolerance = 0.01
)
