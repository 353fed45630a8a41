package domain

// IncomeProfile feeds the denominator of the debt service ratios.
type IncomeProfile struct {
	MonthlyIncome     float64 `json:"monthlyIncome"`
	OtherAnnualIncome float64 `json:"otherAnnualIncome"`
}

// TotalMonthly returns the combined monthly income.
func (p IncomeProfile) TotalMonthly() float64 {
	return p.MonthlyIncome + p.OtherAnnualIncome/12
}

// HousingCosts are the recurring property costs counted into the gross debt
// service ratio alongside the loan payment. PropertyTax is annual; the rest
// are monthly.
type HousingCosts struct {
	PropertyTax  float64 `json:"propertyTax,omitempty"`
	HeatingCosts float64 `json:"heatingCosts,omitempty"`
	CondoFees    float64 `json:"condoFees,omitempty"`
}

// ServiceabilityResult holds the debt service ratios and the affordability
// figure derived from them. AvailableMonthlyIncome may be negative to signal a
// shortfall; every other field is non-negative.
type ServiceabilityResult struct {
	GrossDebtServiceRatio   float64 `json:"grossDebtServiceRatio"` // percent
	TotalDebtServiceRatio   float64 `json:"totalDebtServiceRatio"` // percent
	MonthlyHousingExpenses  float64 `json:"monthlyHousingExpenses"`
	MonthlyDebtPayments     float64 `json:"monthlyDebtPayments"`
	TotalMonthlyObligations float64 `json:"totalMonthlyObligations"`
	AvailableMonthlyIncome  float64 `json:"availableMonthlyIncome"`
	MaxAffordableLoan       float64 `json:"maxAffordableLoan"`
}

// AffordabilityRequest evaluates a hypothetical monthly payment against a
// household's income and existing debts without building a full schedule.
type AffordabilityRequest struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	AnnualRate     float64 `json:"annualRate"`
	TermYears      int     `json:"termYears"`

	PropertyTax  float64 `json:"propertyTax,omitempty"`
	HeatingCosts float64 `json:"heatingCosts,omitempty"`
	CondoFees    float64 `json:"condoFees,omitempty"`

	MonthlyIncome     float64 `json:"monthlyIncome"`
	OtherAnnualIncome float64 `json:"otherAnnualIncome"`

	ExistingDebts []DebtObligation `json:"existingDebts,omitempty"`
}

// AffordabilityResult pairs the ratios with the approval policy verdict.
type AffordabilityResult struct {
	Serviceability ServiceabilityResult `json:"serviceability"`
	Approval       ApprovalAssessment   `json:"approval"`
}

// ApprovalAssessment is the documented lending policy applied to a
// ServiceabilityResult: approval is likely when both ratios sit under their
// conventional ceilings, and every breached ceiling is named in Reasons.
type ApprovalAssessment struct {
	Likely  bool     `json:"likely"`
	Reasons []string `json:"reasons,omitempty"`
}
