package domain

// LoanTerms describes a single loan to be amortized.
type LoanTerms struct {
	Principal        float64          `json:"principal"`
	AnnualRate       float64          `json:"annualRate"` // percent, e.g. 5.25 for 5.25%
	TermYears        int              `json:"termYears"`
	PaymentFrequency PaymentFrequency `json:"paymentFrequency"`
}

// AmortizationPeriod is one row of an amortization schedule.
type AmortizationPeriod struct {
	Period           int     `json:"period"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// LoanRequest is the full input of a loan calculation: the loan itself plus the
// income, property and existing-debt context needed for serviceability.
type LoanRequest struct {
	Amount           float64          `json:"amount"`
	DownPayment      float64          `json:"downPayment"`
	AnnualRate       float64          `json:"annualRate"`
	TermYears        int              `json:"termYears"`
	PaymentFrequency PaymentFrequency `json:"paymentFrequency"`

	// Income context for the debt service ratios.
	MonthlyIncome     float64 `json:"monthlyIncome"`
	OtherAnnualIncome float64 `json:"otherAnnualIncome"`

	// Property context, zero for non-mortgage loans.
	PropertyValue float64 `json:"propertyValue,omitempty"`
	PropertyTax   float64 `json:"propertyTax,omitempty"` // annual
	HeatingCosts  float64 `json:"heatingCosts,omitempty"`
	CondoFees     float64 `json:"condoFees,omitempty"`

	ExistingDebts []DebtObligation `json:"existingDebts,omitempty"`
}

// Principal returns the amount actually financed.
func (r LoanRequest) Principal() float64 {
	return r.Amount - r.DownPayment
}

// LoanCalculation is the aggregate result of a loan calculation.
type LoanCalculation struct {
	MonthlyPayment  float64              `json:"monthlyPayment"`
	BiweeklyPayment float64              `json:"biweeklyPayment"`
	TotalPayment    float64              `json:"totalPayment"`
	TotalInterest   float64              `json:"totalInterest"`
	Schedule        []AmortizationPeriod `json:"amortizationSchedule"`

	Serviceability ServiceabilityResult `json:"serviceability"`
	Approval       ApprovalAssessment   `json:"approval"`

	LoanToValueRatio float64 `json:"loanToValueRatio"`
	BreakEvenMonths  int     `json:"breakEvenMonths"`
}
