package domain

// DebtType tags an existing obligation; it selects the minimum-payment
// estimation policy when no explicit minimum payment is supplied.
type DebtType string

const (
	DebtCreditCard   DebtType = "creditCard"
	DebtLineOfCredit DebtType = "lineOfCredit"
	DebtHeloc        DebtType = "heloc"
	DebtMortgage     DebtType = "mortgage"
	DebtOther        DebtType = "other"
)

// DebtObligation is an existing debt that is not being recalculated, only
// aggregated into the serviceability ratios.
type DebtObligation struct {
	Name             string           `json:"name,omitempty"`
	Type             DebtType         `json:"type,omitempty"`
	Balance          float64          `json:"balance"`
	InterestRate     float64          `json:"interestRate"` // percent
	MinimumPayment   float64          `json:"minimumPayment,omitempty"`
	PaymentFrequency PaymentFrequency `json:"paymentFrequency,omitempty"`
	IsInterestOnly   bool             `json:"isInterestOnly,omitempty"`
}

// PayoffRequest aggregates a set of debts for a payoff-time projection.
type PayoffRequest struct {
	Debts             []DebtObligation `json:"debts"`
	AdditionalPayment float64          `json:"additionalPayment"`
}

// PayoffProjection is the result of a debt payoff projection: how long until
// the combined balance reaches zero at the combined payment, and what it costs.
type PayoffProjection struct {
	Months               int     `json:"months"`
	TotalDebt            float64 `json:"totalDebt"`
	TotalInterest        float64 `json:"totalInterest"`
	TotalPayment         float64 `json:"totalPayment"`
	MonthlyPayment       float64 `json:"monthlyPayment"`
	WeightedInterestRate float64 `json:"weightedInterestRate"`
}
