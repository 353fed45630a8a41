package repository

import (
	"errors"
	"time"

	"fincalc/domain"
)

// ErrNotFound is returned when no stored calculation has the requested id.
var ErrNotFound = errors.New("calculation not found")

// CalculationRecord is one saved loan calculation: the request that produced
// it and the headline numbers worth listing back.
type CalculationRecord struct {
	ID        string                 `json:"id"`
	CreatedAt time.Time              `json:"createdAt"`
	Request   domain.LoanRequest     `json:"request"`
	Result    domain.LoanCalculation `json:"result"`
}

// CalculationRepository stores calculation history. Implementations must be
// safe for concurrent use.
type CalculationRepository interface {
	Save(record CalculationRecord) (string, error)
	List() ([]CalculationRecord, error)
	Get(id string) (CalculationRecord, error)
	Delete(id string) error
}
